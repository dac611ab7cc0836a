package ports

import (
	"context"

	"library/internal/core/domain/model/order"
)

// OrderEventPublisher notifies external consumers about order lifecycle
// changes. Publishing happens after the owning transaction commits; a failed
// publish must not roll the transaction back.
type OrderEventPublisher interface {
	// PublishOrderStatusChanged emits an event describing the order's new status.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error
}
