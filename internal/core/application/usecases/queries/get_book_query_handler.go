package queries

import (
	"context"

	"library/internal/core/ports"
)

// GetBookQueryHandler fetches one book through the book repository.
// Wiring the cached repository decorator here keeps the hot get-by-id path
// off the database.
type GetBookQueryHandler struct {
	books ports.BookRepository
}

// NewGetBookQueryHandler creates a handler for single-book lookups.
func NewGetBookQueryHandler(books ports.BookRepository) GetBookQueryHandler {
	return GetBookQueryHandler{books: books}
}

// Handle executes the query and returns the book's catalog entry.
func (h GetBookQueryHandler) Handle(ctx context.Context, query GetBookQuery) (GetBookQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBookQueryResponse{}, err
	}

	theBook, err := h.books.Get(ctx, query.BookID())
	if err != nil {
		return GetBookQueryResponse{}, err
	}

	return GetBookQueryResponse{
		ID:                theBook.ID(),
		Title:             theBook.Title(),
		Author:            theBook.Author(),
		Description:       theBook.Description(),
		CategoryID:        theBook.CategoryID(),
		SubcategoryID:     theBook.SubcategoryID(),
		Language:          theBook.Language(),
		EditionYear:       theBook.EditionYear(),
		InventoryNumber:   theBook.InventoryNumber(),
		Quantity:          theBook.Quantity(),
		IsPossibleToOrder: theBook.IsPossibleToOrder(),
		OrdersQuantity:    theBook.OrdersQuantity(),
		Rating:            theBook.Rating(),
		ReviewsQuantity:   theBook.ReviewsQuantity(),
		CreatedTime:       theBook.CreatedTime(),
	}, nil
}
