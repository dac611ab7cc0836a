package ports

import (
	"context"

	"library/internal/core/domain/model/category"
	"library/internal/core/domain/model/kernel"
)

// CategoryRepository defines the persistence contract for categories and
// their subcategories.
type CategoryRepository interface {
	// Add persists a new category to storage.
	Add(ctx context.Context, aggregate *category.Category) error

	// Get retrieves a category by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*category.Category, error)

	// AddSubcategory persists a new subcategory under an existing category.
	AddSubcategory(ctx context.Context, aggregate *category.Subcategory) error

	// GetSubcategory retrieves a subcategory by its unique identifier.
	GetSubcategory(ctx context.Context, id kernel.UUID) (*category.Subcategory, error)
}
