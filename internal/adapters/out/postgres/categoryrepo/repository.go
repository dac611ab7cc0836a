package categoryrepo

import (
	"context"
	"errors"

	"library/internal/core/domain/model/category"
	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Add saves a new category to the database.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *category.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a category by ID.
func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddSubcategory saves a new subcategory to the database.
func (r *GormCategoryRepository) AddSubcategory(ctx context.Context, aggregate *category.Subcategory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := subcategoryFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetSubcategory retrieves a subcategory by ID.
func (r *GormCategoryRepository) GetSubcategory(ctx context.Context, id kernel.UUID) (*category.Subcategory, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubcategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subcategory", id.String())
		}
		return nil, err
	}

	return subcategoryToDomain(dto)
}
