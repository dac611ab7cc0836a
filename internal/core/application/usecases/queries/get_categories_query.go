package queries

import (
	"errors"

	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/guard"
)

var ErrGetCategoriesQueryIsNotConstructed = errors.New(
	"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
)

// GetCategoriesQuery lists the catalog categories with their subcategories.
// This is a parameterless query; the listing is public.
type GetCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCategoriesQuery creates a query to list categories.
func NewGetCategoriesQuery() GetCategoriesQuery {
	return GetCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCategoriesQueryIsNotConstructed if validation fails.
func (q GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}

// GetCategoriesQueryResponse represents one category with its subcategories.
type GetCategoriesQueryResponse struct {
	ID            kernel.UUID
	Title         string
	Subcategories []SubcategoryResponse
}

// SubcategoryResponse represents one subcategory in a category listing.
type SubcategoryResponse struct {
	ID    kernel.UUID
	Title string
}
