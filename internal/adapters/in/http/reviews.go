package http

import (
	"net/http"

	"library/internal/core/application/usecases/commands"
	"library/internal/core/application/usecases/queries"
	"library/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AddReview handles POST /api/v1/books/:id/reviews - adds a review to a book.
func (s *Server) AddReview(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	bookID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid book id")
	}

	var req ReviewRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewAddReviewCommand(reviewID, actor.ID(), bookID, req.Text, req.Grade)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.handlers.AddReview.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: reviewID.String()})
}

// GetBookReviews handles GET /api/v1/books/:id/reviews - lists a book's
// reviews, newest first.
func (s *Server) GetBookReviews(c echo.Context) error {
	bookID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid book id")
	}

	query, err := queries.NewGetBookReviewsQuery(bookID)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	reviews, err := s.handlers.GetBookReviews.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	response := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		response[i] = ReviewResponse{
			ID:          r.ID.String(),
			AuthorID:    r.AuthorID.String(),
			AuthorName:  r.AuthorName,
			Text:        r.Text,
			Grade:       r.Grade,
			CreatedTime: r.CreatedTime,
		}
	}

	return c.JSON(http.StatusOK, response)
}
