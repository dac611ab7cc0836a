// Package reviewrepo provides data transfer objects and mapping functions for review persistence.
package reviewrepo

import (
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
// The (author, book) pair is unique: one review per user per book.
type ReviewDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_author_book"`
	BookID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_author_book"`
	Text        string
	Grade       int
	CreatedTime time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain entity to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:          aggregate.ID().Bytes(),
		AuthorID:    aggregate.AuthorID().Bytes(),
		BookID:      aggregate.BookID().Bytes(),
		Text:        aggregate.Text(),
		Grade:       aggregate.Grade(),
		CreatedTime: aggregate.CreatedTime(),
	}
}

// toDomain converts a database DTO to a review domain entity using RestoreReview.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	bookID, err := kernel.UUIDFromBytes(dto.BookID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, authorID, bookID, dto.Text, dto.Grade, dto.CreatedTime)
}
