package reviewrepo

import (
	"context"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/review"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Add saves a new review to the database.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ExistsForUserAndBook reports whether the user already reviewed the book.
func (r *GormReviewRepository) ExistsForUserAndBook(
	ctx context.Context,
	userID, bookID kernel.UUID,
) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}
	if err := bookID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("author_id = ? AND book_id = ?", userID.Bytes(), bookID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
