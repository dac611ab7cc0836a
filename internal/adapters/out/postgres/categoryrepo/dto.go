// Package categoryrepo provides data transfer objects and mapping functions for category persistence.
package categoryrepo

import (
	"library/internal/core/domain/model/category"
	"library/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// SubcategoryDTO represents the database structure for persisting subcategories.
type SubcategoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title      string
	CategoryID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for subcategory entities.
func (SubcategoryDTO) TableName() string {
	return "subcategories"
}

func fromDomain(aggregate *category.Category) CategoryDTO {
	return CategoryDTO{
		ID:    aggregate.ID().Bytes(),
		Title: aggregate.Title(),
	}
}

func toDomain(dto CategoryDTO) (*category.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return category.NewCategory(id, dto.Title)
}

func subcategoryFromDomain(aggregate *category.Subcategory) SubcategoryDTO {
	return SubcategoryDTO{
		ID:         aggregate.ID().Bytes(),
		Title:      aggregate.Title(),
		CategoryID: aggregate.CategoryID().Bytes(),
	}
}

func subcategoryToDomain(dto SubcategoryDTO) (*category.Subcategory, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	return category.NewSubcategory(id, dto.Title, categoryID)
}
