package commands

import (
	"errors"

	"library/internal/pkg/guard"
)

var ErrExpireOverdueOrdersCommandIsNotConstructed = errors.New(
	"ExpireOverdueOrdersCommand must be created via NewExpireOverdueOrdersCommand constructor",
)

// ExpireOverdueOrdersCommand triggers rejection of stale orders.
// Pending orders whose due date has passed were never picked up and are
// rejected in bulk. Run periodically by the background job scheduler.
//
// Example:
//
//	cmd := NewExpireOverdueOrdersCommand()
//	handler := NewExpireOverdueOrdersCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Expiry sweep failed: %v", err)
//	}
type ExpireOverdueOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireOverdueOrdersCommand creates a new command to trigger the expiry sweep.
func NewExpireOverdueOrdersCommand() ExpireOverdueOrdersCommand {
	return ExpireOverdueOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireOverdueOrdersCommandIsNotConstructed if validation fails.
func (c *ExpireOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrExpireOverdueOrdersCommandIsNotConstructed,
	)
}
