package commands

import (
	"context"

	"library/internal/core/domain/services"
)

// DeleteOrderCommandHandler handles order removal.
// Deletion never moves inventory: the policy only permits it for statuses
// that hold no reserved copy (Pending for owners, Rejected and Cancelled for
// staff). The order row is locked first so a concurrent transition cannot
// slip in between the policy check and the delete.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order deletion command.
// Returns services.ErrForbidden when the actor may not delete the order in
// its current status.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
	if !h.policy.CanDelete(cmd.ActorRole(), isOwner, theOrder.Status()) {
		return services.ErrForbidden
	}

	if err = orderRepo.Delete(ctx, theOrder.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
