package http

import (
	"net/http"
	"strconv"

	"library/internal/core/application/usecases/commands"
	"library/internal/core/application/usecases/queries"
	"library/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AddBook handles POST /api/v1/books - adds a book to the catalog.
func (s *Server) AddBook(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req BookRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return badRequest(c, "Invalid category_id")
	}

	subcategoryID, err := parseOptionalUUID(req.SubcategoryID)
	if err != nil {
		return badRequest(c, "Invalid subcategory_id")
	}

	// New books are orderable unless the request says otherwise
	isPossibleToOrder := true
	if req.IsPossibleToOrder != nil {
		isPossibleToOrder = *req.IsPossibleToOrder
	}

	bookID := kernel.NewUUID()
	cmd, err := commands.NewAddBookCommand(
		bookID,
		actor.Role(),
		req.Title, req.Author, req.Description,
		categoryID,
		subcategoryID,
		req.Language, req.EditionYear, req.InventoryNumber,
		req.Quantity,
		isPossibleToOrder,
	)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.handlers.AddBook.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: bookID.String()})
}

// UpdateBook handles PUT /api/v1/books/:id - updates a book's catalog entry.
func (s *Server) UpdateBook(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	bookID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid book id")
	}

	var req BookRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	subcategoryID, err := parseOptionalUUID(req.SubcategoryID)
	if err != nil {
		return badRequest(c, "Invalid subcategory_id")
	}

	isPossibleToOrder := true
	if req.IsPossibleToOrder != nil {
		isPossibleToOrder = *req.IsPossibleToOrder
	}

	cmd, err := commands.NewUpdateBookCommand(
		bookID,
		actor.Role(),
		req.Title, req.Author, req.Description,
		subcategoryID,
		req.Language, req.EditionYear, req.InventoryNumber,
		req.Quantity,
		isPossibleToOrder,
	)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.handlers.UpdateBook.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetBook handles GET /api/v1/books/:id - retrieves one book.
func (s *Server) GetBook(c echo.Context) error {
	bookID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid book id")
	}

	query, err := queries.NewGetBookQuery(bookID)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	b, err := s.handlers.GetBook.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	var subcategoryID *string
	if b.SubcategoryID != nil {
		raw := b.SubcategoryID.String()
		subcategoryID = &raw
	}

	return c.JSON(http.StatusOK, BookResponse{
		ID:                b.ID.String(),
		Title:             b.Title,
		Author:            b.Author,
		Description:       b.Description,
		CategoryID:        b.CategoryID.String(),
		SubcategoryID:     subcategoryID,
		Language:          b.Language,
		EditionYear:       b.EditionYear,
		InventoryNumber:   b.InventoryNumber,
		Quantity:          b.Quantity,
		IsPossibleToOrder: b.IsPossibleToOrder,
		OrdersQuantity:    b.OrdersQuantity,
		Rating:            b.Rating,
		ReviewsQuantity:   b.ReviewsQuantity,
		CreatedTime:       b.CreatedTime,
	})
}

// GetBooks handles GET /api/v1/books - lists books with optional filters.
// Supported query parameters: title, author, category, orders_more_than,
// orders_less_than.
func (s *Server) GetBooks(c echo.Context) error {
	var filter queries.GetBooksFilter

	if title := c.QueryParam("title"); title != "" {
		filter.Title = &title
	}
	if author := c.QueryParam("author"); author != "" {
		filter.Author = &author
	}
	if category := c.QueryParam("category"); category != "" {
		filter.CategoryTitle = &category
	}

	var err error
	if filter.OrdersMoreThan, err = parseOptionalInt(c.QueryParam("orders_more_than")); err != nil {
		return badRequest(c, "Invalid orders_more_than")
	}
	if filter.OrdersLessThan, err = parseOptionalInt(c.QueryParam("orders_less_than")); err != nil {
		return badRequest(c, "Invalid orders_less_than")
	}

	query, err := queries.NewGetBooksQuery(filter)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	books, err := s.handlers.GetBooks.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	response := make([]BookListItem, len(books))
	for i, b := range books {
		response[i] = BookListItem{
			ID:                b.ID.String(),
			Title:             b.Title,
			Author:            b.Author,
			Description:       b.Description,
			CategoryTitle:     b.CategoryTitle,
			Language:          b.Language,
			EditionYear:       b.EditionYear,
			Quantity:          b.Quantity,
			IsPossibleToOrder: b.IsPossibleToOrder,
			OrdersQuantity:    b.OrdersQuantity,
			Rating:            b.Rating,
			ReviewsQuantity:   b.ReviewsQuantity,
			CreatedTime:       b.CreatedTime,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// parseOptionalUUID converts an optional string parameter to a UUID pointer.
func parseOptionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseOptionalInt converts an optional query parameter to an int pointer.
func parseOptionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
