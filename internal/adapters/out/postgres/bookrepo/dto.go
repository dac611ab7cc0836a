// Package bookrepo provides data transfer objects and mapping functions for book persistence.
// The book row carries the inventory counters, so writers load it with a row
// lock before mutating quantity.
package bookrepo

import (
	"time"

	"library/internal/core/domain/model/book"
	"library/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookDTO represents the database structure for persisting book aggregates.
type BookDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title             string    `gorm:"index"`
	Author            string    `gorm:"index"`
	Description       string
	CategoryID        uuid.UUID  `gorm:"type:uuid;index"`
	SubcategoryID     *uuid.UUID `gorm:"type:uuid;index"`
	Language          string
	EditionYear       string
	InventoryNumber   string
	Quantity          int
	IsPossibleToOrder bool
	OrdersQuantity    int
	Rating            float64
	ReviewsQuantity   int
	TotalRating       int
	CreatedTime       time.Time
}

// TableName specifies the database table name for book entities.
func (BookDTO) TableName() string {
	return "books"
}

// fromDomain converts a book domain aggregate to its database representation.
func fromDomain(aggregate *book.Book) BookDTO {
	var subcategoryID *uuid.UUID
	if id := aggregate.SubcategoryID(); id != nil {
		raw := id.Bytes()
		subcategoryID = &raw
	}

	return BookDTO{
		ID:                aggregate.ID().Bytes(),
		Title:             aggregate.Title(),
		Author:            aggregate.Author(),
		Description:       aggregate.Description(),
		CategoryID:        aggregate.CategoryID().Bytes(),
		SubcategoryID:     subcategoryID,
		Language:          aggregate.Language(),
		EditionYear:       aggregate.EditionYear(),
		InventoryNumber:   aggregate.InventoryNumber(),
		Quantity:          aggregate.Quantity(),
		IsPossibleToOrder: aggregate.IsPossibleToOrder(),
		OrdersQuantity:    aggregate.OrdersQuantity(),
		Rating:            aggregate.Rating(),
		ReviewsQuantity:   aggregate.ReviewsQuantity(),
		TotalRating:       aggregate.TotalRating(),
		CreatedTime:       aggregate.CreatedTime(),
	}
}

// toDomain converts a database DTO to a book domain aggregate using RestoreBook.
func toDomain(dto BookDTO) (*book.Book, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	var subcategoryID *kernel.UUID
	if dto.SubcategoryID != nil {
		subID, subErr := kernel.UUIDFromBytes((*dto.SubcategoryID)[:])
		if subErr != nil {
			return nil, subErr
		}
		subcategoryID = &subID
	}

	return book.RestoreBook(
		id,
		dto.Title, dto.Author, dto.Description,
		categoryID,
		subcategoryID,
		dto.Language, dto.EditionYear, dto.InventoryNumber,
		dto.Quantity,
		dto.IsPossibleToOrder,
		dto.OrdersQuantity,
		dto.ReviewsQuantity,
		dto.TotalRating,
		dto.Rating,
		dto.CreatedTime,
	)
}
