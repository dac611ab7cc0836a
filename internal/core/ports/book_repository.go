package ports

import (
	"context"

	"library/internal/core/domain/model/book"
	"library/internal/core/domain/model/kernel"
)

// BookRepository defines the persistence contract for book aggregates.
// The book carries the inventory state, so commands that reserve or release
// copies must load it through GetForUpdate.
type BookRepository interface {
	// Add persists a new book aggregate to storage.
	// The book must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *book.Book) error

	// Update persists changes to an existing book aggregate.
	Update(ctx context.Context, aggregate *book.Book) error

	// Get retrieves a book aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*book.Book, error)

	// GetForUpdate retrieves a book and locks its row for the duration of the
	// current transaction. Inventory mutations go through this method so two
	// fulfillments of the last copy cannot both succeed.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*book.Book, error)

	// Delete removes a book aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
