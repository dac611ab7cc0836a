package commands

import (
	"errors"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/order"
	"library/internal/core/domain/model/user"
	"library/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to move an order to a target status,
// optionally updating its comment and due date in the same step. Owners edit
// their Pending orders with targetStatus Pending; librarians drive the order
// through its lifecycle.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actorID      kernel.UUID
	actorRole    user.Role
	targetStatus order.Status
	comment      *string
	dueTime      *kernel.DueDate

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
// comment and dueTime are optional; nil leaves the field untouched.
func NewUpdateOrderCommand(
	orderID, actorID kernel.UUID,
	actorRole user.Role,
	targetStatus order.Status,
	comment *string,
	dueTime *kernel.DueDate,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setActorID(actorID),
		orderCommand.setActorRole(actorRole),
		orderCommand.setTargetStatus(targetStatus),
		orderCommand.setDueTime(dueTime),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the acting user.
func (c UpdateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the acting user.
func (c UpdateOrderCommand) ActorRole() user.Role {
	return c.actorRole
}

// TargetStatus returns the status the order should move to.
func (c UpdateOrderCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// Comment returns the new comment, or nil when the comment is unchanged.
func (c UpdateOrderCommand) Comment() *string {
	return c.comment
}

// DueTime returns the new due date, or nil when the due date is unchanged.
func (c UpdateOrderCommand) DueTime() *kernel.DueDate {
	return c.dueTime
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateOrderCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *UpdateOrderCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}

func (c *UpdateOrderCommand) setDueTime(dueTime *kernel.DueDate) error {
	if dueTime == nil {
		return nil
	}
	if err := dueTime.Validate(); err != nil {
		return err
	}

	c.dueTime = dueTime
	return nil
}
