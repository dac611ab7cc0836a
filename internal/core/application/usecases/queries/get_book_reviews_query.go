package queries

import (
	"errors"
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/guard"
)

var ErrGetBookReviewsQueryIsNotConstructed = errors.New(
	"GetBookReviewsQuery must be created via NewGetBookReviewsQuery constructor",
)

// GetBookReviewsQuery lists the reviews left on one book.
type GetBookReviewsQuery struct { //nolint:recvcheck //using for validation
	bookID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBookReviewsQuery creates a query to list a book's reviews.
func NewGetBookReviewsQuery(bookID kernel.UUID) (GetBookReviewsQuery, error) {
	query := GetBookReviewsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setBookID(bookID); err != nil {
		return GetBookReviewsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBookReviewsQueryIsNotConstructed if validation fails.
func (q GetBookReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetBookReviewsQueryIsNotConstructed)
}

// BookID returns the identifier of the reviewed book.
func (q GetBookReviewsQuery) BookID() kernel.UUID {
	return q.bookID
}

func (q *GetBookReviewsQuery) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	q.bookID = bookID
	return nil
}

// GetBookReviewsQueryResponse represents one review in a listing.
type GetBookReviewsQueryResponse struct {
	ID          kernel.UUID
	AuthorID    kernel.UUID
	AuthorName  string
	Text        string
	Grade       int
	CreatedTime time.Time
}
