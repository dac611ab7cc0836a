package commands

import (
	"errors"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/user"
	"library/internal/pkg/guard"
)

var ErrAddCategoryCommandIsNotConstructed = errors.New(
	"AddCategoryCommand must be created via NewAddCategoryCommand constructor",
)

// AddCategoryCommand represents a request to add a new catalog category.
type AddCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID
	actorRole  user.Role
	title      string

	guard guard.ConstructorGuard
}

// NewAddCategoryCommand creates a command to add a category.
func NewAddCategoryCommand(categoryID kernel.UUID, actorRole user.Role, title string) (AddCategoryCommand, error) {
	categoryCommand := AddCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		categoryCommand.setCategoryID(categoryID),
		categoryCommand.setActorRole(actorRole),
		categoryCommand.setTitle(title),
	); err != nil {
		return AddCategoryCommand{}, err
	}

	return categoryCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCategoryCommandIsNotConstructed if validation fails.
func (c AddCategoryCommand) Validate() error {
	return c.guard.Validate(ErrAddCategoryCommandIsNotConstructed)
}

// CategoryID returns the identifier for the new category.
func (c AddCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// ActorRole returns the role of the acting user.
func (c AddCategoryCommand) ActorRole() user.Role {
	return c.actorRole
}

// Title returns the category title.
func (c AddCategoryCommand) Title() string {
	return c.title
}

func (c *AddCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *AddCategoryCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *AddCategoryCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}
