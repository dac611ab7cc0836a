package commands

import (
	"errors"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/user"
	"library/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new borrowing order.
// The owner is the acting user; their role decides whether placing orders
// is permitted at all.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, actorID, user.Student, bookID, dueTime, "for the term paper")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	ownerID   kernel.UUID
	ownerRole user.Role
	bookID    kernel.UUID
	dueTime   kernel.DueDate
	comment   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new borrowing order.
// Validates identifiers, role and due date. The comment is optional.
func NewCreateOrderCommand(
	orderID, ownerID kernel.UUID,
	ownerRole user.Role,
	bookID kernel.UUID,
	dueTime kernel.DueDate,
	comment string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOwnerID(ownerID),
		orderCommand.setOwnerRole(ownerRole),
		orderCommand.setBookID(bookID),
		orderCommand.setDueTime(dueTime),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the user placing the order.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// OwnerRole returns the role of the user placing the order.
func (c CreateOrderCommand) OwnerRole() user.Role {
	return c.ownerRole
}

// BookID returns the identifier of the requested book.
func (c CreateOrderCommand) BookID() kernel.UUID {
	return c.bookID
}

// DueTime returns the requested return date.
func (c CreateOrderCommand) DueTime() kernel.DueDate {
	return c.dueTime
}

// Comment returns the optional note attached to the order.
func (c CreateOrderCommand) Comment() string {
	return c.comment
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setOwnerRole(ownerRole user.Role) error {
	if err := ownerRole.Validate(); err != nil {
		return err
	}

	c.ownerRole = ownerRole
	return nil
}

func (c *CreateOrderCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	c.bookID = bookID
	return nil
}

func (c *CreateOrderCommand) setDueTime(dueTime kernel.DueDate) error {
	if err := dueTime.Validate(); err != nil {
		return err
	}

	c.dueTime = dueTime
	return nil
}
