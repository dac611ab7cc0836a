package commands

import (
	"context"

	"library/internal/core/domain/model/book"
	"library/internal/core/domain/model/order"
	"library/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Checks that the acting user may borrow, that the book is currently
// available, and persists the new order in Pending status. No inventory is
// moved at creation time; copies are reserved only on fulfillment.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, actorID, user.Student, bookID, dueTime, "")
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrForbidden):
//	    // actor may not place orders
//	case errors.Is(err, book.ErrInventoryUnavailable):
//	    // no copies to borrow right now
//	case err != nil:
//	    return err
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory since the handler reads the book while adding the order.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order placement command.
// Fails with services.ErrForbidden when the role may not borrow and with
// book.ErrInventoryUnavailable when the book has no orderable copies.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.CanCreate(cmd.OwnerRole()) {
		return services.ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestedBook, err := uow.BookRepository().Get(ctx, cmd.BookID())
	if err != nil {
		return err
	}

	if !requestedBook.IsAvailableForOrder() {
		return book.ErrInventoryUnavailable
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.OwnerID(), cmd.BookID(), cmd.DueTime(), cmd.Comment())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
