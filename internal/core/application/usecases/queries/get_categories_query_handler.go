package queries

import (
	"context"

	"library/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCategoriesQueryHandler lists categories and their subcategories.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler creates a handler for category listings.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle executes the query and returns all categories sorted by title,
// each with its subcategories.
func (h GetCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetCategoriesQuery,
) ([]GetCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.title,
			s.id,
			s.title
		FROM categories c
		LEFT JOIN subcategories s ON s.category_id = c.id
		ORDER BY c.title, s.title
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]GetCategoriesQueryResponse, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var (
			categoryID       uuid.UUID
			categoryTitle    string
			subcategoryID    *uuid.UUID
			subcategoryTitle *string
		)

		if err = rows.Scan(&categoryID, &categoryTitle, &subcategoryID, &subcategoryTitle); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(categoryID[:])
		if idErr != nil {
			return nil, idErr
		}

		pos, seen := index[id]
		if !seen {
			categories = append(categories, GetCategoriesQueryResponse{
				ID:            id,
				Title:         categoryTitle,
				Subcategories: make([]SubcategoryResponse, 0),
			})
			pos = len(categories) - 1
			index[id] = pos
		}

		if subcategoryID != nil && subcategoryTitle != nil {
			subID, subErr := kernel.UUIDFromBytes((*subcategoryID)[:])
			if subErr != nil {
				return nil, subErr
			}
			categories[pos].Subcategories = append(categories[pos].Subcategories, SubcategoryResponse{
				ID:    subID,
				Title: *subcategoryTitle,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
