package commands

import (
	"context"

	"library/internal/core/domain/model/order"
	"library/internal/core/ports"
)

// ExpireOverdueOrdersCommandHandler rejects Pending orders past their due
// date. Rejecting a Pending order never moves inventory, so an order-only
// unit of work is enough. All stale orders found in the sweep are rejected
// within one transaction.
type ExpireOverdueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewExpireOverdueOrdersCommandHandler creates a handler for the expiry sweep.
func NewExpireOverdueOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) ExpireOverdueOrdersCommandHandler {
	return ExpireOverdueOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the expiry sweep command.
func (h ExpireOverdueOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireOverdueOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	staleOrders, err := orderRepo.GetAllPendingPastDue(ctx)
	if err != nil {
		return err
	}

	for _, staleOrder := range staleOrders {
		if _, err = staleOrder.ChangeStatus(order.Rejected); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, staleOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, staleOrder := range staleOrders {
		// The producer is asynchronous and reports failures out of band.
		_ = h.publisher.PublishOrderStatusChanged(ctx, staleOrder)
	}

	return nil
}
