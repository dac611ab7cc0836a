package ports

import (
	"context"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a new review to storage.
	Add(ctx context.Context, aggregate *review.Review) error

	// ExistsForUserAndBook reports whether the user already reviewed the book.
	ExistsForUserAndBook(ctx context.Context, userID, bookID kernel.UUID) (bool, error)
}
