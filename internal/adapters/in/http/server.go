// Package http exposes the borrowing service over a JSON REST API.
// It coordinates between HTTP handlers and application use cases: handlers
// parse and validate the transport layer, build commands and queries, and
// translate use case failures into HTTP status codes.
package http

import (
	"log/slog"
	"net/http"

	"library/internal/core/application/usecases/commands"
	"library/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder    commands.CreateOrderCommandHandler
	UpdateOrder    commands.UpdateOrderCommandHandler
	DeleteOrder    commands.DeleteOrderCommandHandler
	AddBook        commands.AddBookCommandHandler
	UpdateBook     commands.UpdateBookCommandHandler
	AddCategory    commands.AddCategoryCommandHandler
	AddSubcategory commands.AddSubcategoryCommandHandler
	AddReview      commands.AddReviewCommandHandler

	GetOrders      queries.GetOrdersQueryHandler
	GetBooks       queries.GetBooksQueryHandler
	GetBook        queries.GetBookQueryHandler
	GetBookReviews queries.GetBookReviewsQueryHandler
	GetCategories  queries.GetCategoriesQueryHandler
}

// Server implements the HTTP API for orders, books, categories and reviews.
type Server struct {
	logger   *slog.Logger
	auth     *AuthMiddleware
	handlers Handlers
}

// NewServer creates a new HTTP server with the required use case handlers.
func NewServer(logger *slog.Logger, auth *AuthMiddleware, handlers Handlers) *Server {
	return &Server{
		logger:   logger,
		auth:     auth,
		handlers: handlers,
	}
}

// RegisterRoutes attaches middleware and all API routes to the echo instance.
// Every route requires a valid bearer token; authorization beyond that lives
// in the domain policy, not here.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(RequestLogger(s.logger))

	e.GET("/health", s.Health)

	api := e.Group("/api/v1", s.auth.Authenticate)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/books", s.GetBooks)
	api.POST("/books", s.AddBook)
	api.GET("/books/:id", s.GetBook)
	api.PUT("/books/:id", s.UpdateBook)
	api.GET("/books/:id/reviews", s.GetBookReviews)
	api.POST("/books/:id/reviews", s.AddReview)

	api.GET("/categories", s.GetCategories)
	api.POST("/categories", s.AddCategory)
	api.POST("/categories/:id/subcategories", s.AddSubcategory)
}

// Health handles GET /health - liveness probe, no auth.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// unauthorized is returned when a handler runs without an authenticated
// actor, which only happens if a route was registered outside the auth group
// by mistake.
func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Unauthorized",
	})
}
