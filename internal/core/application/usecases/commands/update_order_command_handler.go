package commands

import (
	"context"

	"library/internal/core/domain/model/order"
	"library/internal/core/domain/services"
	"library/internal/core/ports"
)

// UpdateOrderCommandHandler drives an order through its lifecycle.
// It authorizes the actor against the access policy, asks the order aggregate
// for the status transition, and applies the resulting inventory effect to the
// book inside the same transaction. Both the order row and, when inventory
// moves, the book row are locked for the duration of the transaction, so
// concurrent updates of the same order or the last copy of a book serialize.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewUpdateOrderCommand(orderID, actorID, user.Librarian, order.Fulfilled, nil, nil)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrForbidden):
//	    // actor may not perform this transition
//	case errors.Is(err, order.ErrImmutable):
//	    // order is already in a terminal status
//	case errors.Is(err, book.ErrOutOfStock):
//	    // the last copy is gone
//	case err != nil:
//	    return err
//	}
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	policy     services.AccessPolicy
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
// Requires a UoWFactory for transactional order+book persistence and a
// publisher for post-commit status change notifications.
func NewUpdateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order update command.
// Returns services.ErrForbidden when the policy denies the actor,
// order.ErrImmutable on terminal orders, order.ErrInvalidStatus when the
// stored status is corrupt, and book.ErrOutOfStock when fulfillment finds no
// copy left.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	theOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	isOwner := theOrder.IsOwnedBy(cmd.ActorID())
	if !h.policy.CanTransition(cmd.ActorRole(), isOwner, theOrder.Status(), cmd.TargetStatus()) {
		return services.ErrForbidden
	}

	effect, err := theOrder.ChangeStatus(cmd.TargetStatus())
	if err != nil {
		return err
	}

	if cmd.Comment() != nil {
		theOrder.UpdateComment(*cmd.Comment())
	}
	if cmd.DueTime() != nil {
		if err = theOrder.UpdateDueTime(*cmd.DueTime()); err != nil {
			return err
		}
	}

	if err = h.applyInventoryEffect(ctx, uow, theOrder, effect); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The producer is asynchronous and reports failures out of band.
	_ = h.publisher.PublishOrderStatusChanged(ctx, theOrder)

	return nil
}

func (h UpdateOrderCommandHandler) applyInventoryEffect(
	ctx context.Context,
	uow UoW,
	theOrder *order.Order,
	effect order.InventoryEffect,
) error {
	if effect == order.EffectNone {
		return nil
	}

	bookRepo := uow.BookRepository()

	theBook, err := bookRepo.GetForUpdate(ctx, theOrder.BookID())
	if err != nil {
		return err
	}

	switch effect {
	case order.EffectReserve:
		if err = theBook.ReserveOnFulfillment(); err != nil {
			return err
		}
	case order.EffectRelease:
		theBook.ReleaseOnReversal()
	}

	return bookRepo.Update(ctx, theBook)
}
