// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by name; an unparseable stored value surfaces as a
// data-integrity error when the row is read back.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	BookID      uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"index"`
	Comment     string
	CreatedTime time.Time
	DueTime     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OwnerID:     aggregate.OwnerID().Bytes(),
		BookID:      aggregate.BookID().Bytes(),
		Status:      aggregate.Status().String(),
		Comment:     aggregate.Comment(),
		CreatedTime: aggregate.CreatedTime(),
		DueTime:     aggregate.DueTime().Time(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	bookID, err := kernel.UUIDFromBytes(dto.BookID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	dueTime, err := kernel.RestoreDueDate(dto.DueTime)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, ownerID, bookID, status, dto.Comment, dto.CreatedTime, dueTime)
}
