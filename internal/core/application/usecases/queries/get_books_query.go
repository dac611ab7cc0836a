package queries

import (
	"errors"
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/guard"
)

var ErrGetBooksQueryIsNotConstructed = errors.New(
	"GetBooksQuery must be created via NewGetBooksQuery constructor",
)

// GetBooksQuery lists catalog books with optional filters.
// All filters are optional and combine with AND.
//
// Example:
//
//	author := "Tolkien"
//	moreThan := 10
//	query, _ := NewGetBooksQuery(GetBooksFilter{Author: &author, OrdersMoreThan: &moreThan})
//	books, err := NewGetBooksQueryHandler(db).Handle(ctx, query)
type GetBooksQuery struct {
	filter GetBooksFilter

	guard guard.ConstructorGuard
}

// GetBooksFilter carries the optional listing filters.
// Title and Author match substrings case-insensitively; CategoryTitle matches
// the category name exactly; the orders-count bounds are exclusive.
type GetBooksFilter struct {
	Title          *string
	Author         *string
	CategoryTitle  *string
	OrdersMoreThan *int
	OrdersLessThan *int
}

// NewGetBooksQuery creates a query to list catalog books.
func NewGetBooksQuery(filter GetBooksFilter) (GetBooksQuery, error) {
	return GetBooksQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBooksQueryIsNotConstructed if validation fails.
func (q GetBooksQuery) Validate() error {
	return q.guard.Validate(ErrGetBooksQueryIsNotConstructed)
}

// Filter returns the listing filters.
func (q GetBooksQuery) Filter() GetBooksFilter {
	return q.filter
}

// GetBooksQueryResponse represents one book in a listing.
type GetBooksQueryResponse struct {
	ID                kernel.UUID
	Title             string
	Author            string
	Description       string
	CategoryTitle     string
	Language          string
	EditionYear       string
	Quantity          int
	IsPossibleToOrder bool
	OrdersQuantity    int
	Rating            float64
	ReviewsQuantity   int
	CreatedTime       time.Time
}
