package queries

import (
	"errors"
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/guard"
)

var ErrGetBookQueryIsNotConstructed = errors.New(
	"GetBookQuery must be created via NewGetBookQuery constructor",
)

// GetBookQuery retrieves one book by its identifier.
// The handler reads through the book repository rather than the database so
// the cached decorator serves repeated lookups.
type GetBookQuery struct { //nolint:recvcheck //using for validation
	bookID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBookQuery creates a query to fetch a single book.
func NewGetBookQuery(bookID kernel.UUID) (GetBookQuery, error) {
	query := GetBookQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setBookID(bookID); err != nil {
		return GetBookQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBookQueryIsNotConstructed if validation fails.
func (q GetBookQuery) Validate() error {
	return q.guard.Validate(ErrGetBookQueryIsNotConstructed)
}

// BookID returns the identifier of the requested book.
func (q GetBookQuery) BookID() kernel.UUID {
	return q.bookID
}

func (q *GetBookQuery) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	q.bookID = bookID
	return nil
}

// GetBookQueryResponse represents the full catalog entry of one book.
type GetBookQueryResponse struct {
	ID                kernel.UUID
	Title             string
	Author            string
	Description       string
	CategoryID        kernel.UUID
	SubcategoryID     *kernel.UUID
	Language          string
	EditionYear       string
	InventoryNumber   string
	Quantity          int
	IsPossibleToOrder bool
	OrdersQuantity    int
	Rating            float64
	ReviewsQuantity   int
	CreatedTime       time.Time
}
