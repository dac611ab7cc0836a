// Package ports defines repository and messaging interfaces for the library
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration of
	// the current transaction. Callers mutating order status must use this
	// instead of Get so concurrent transitions of the same order serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllPendingPastDue retrieves all orders still in Pending status whose
	// due time is already in the past. Used by the expiry job.
	GetAllPendingPastDue(ctx context.Context) ([]*order.Order, error)
}
