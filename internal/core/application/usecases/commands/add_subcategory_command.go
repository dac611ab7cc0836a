package commands

import (
	"errors"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/user"
	"library/internal/pkg/guard"
)

var ErrAddSubcategoryCommandIsNotConstructed = errors.New(
	"AddSubcategoryCommand must be created via NewAddSubcategoryCommand constructor",
)

// AddSubcategoryCommand represents a request to add a subcategory under an
// existing category.
type AddSubcategoryCommand struct { //nolint:recvcheck //using for validation
	subcategoryID kernel.UUID
	categoryID    kernel.UUID
	actorRole     user.Role
	title         string

	guard guard.ConstructorGuard
}

// NewAddSubcategoryCommand creates a command to add a subcategory.
func NewAddSubcategoryCommand(
	subcategoryID, categoryID kernel.UUID,
	actorRole user.Role,
	title string,
) (AddSubcategoryCommand, error) {
	subcategoryCommand := AddSubcategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		subcategoryCommand.setSubcategoryID(subcategoryID),
		subcategoryCommand.setCategoryID(categoryID),
		subcategoryCommand.setActorRole(actorRole),
		subcategoryCommand.setTitle(title),
	); err != nil {
		return AddSubcategoryCommand{}, err
	}

	return subcategoryCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddSubcategoryCommandIsNotConstructed if validation fails.
func (c AddSubcategoryCommand) Validate() error {
	return c.guard.Validate(ErrAddSubcategoryCommandIsNotConstructed)
}

// SubcategoryID returns the identifier for the new subcategory.
func (c AddSubcategoryCommand) SubcategoryID() kernel.UUID {
	return c.subcategoryID
}

// CategoryID returns the identifier of the parent category.
func (c AddSubcategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// ActorRole returns the role of the acting user.
func (c AddSubcategoryCommand) ActorRole() user.Role {
	return c.actorRole
}

// Title returns the subcategory title.
func (c AddSubcategoryCommand) Title() string {
	return c.title
}

func (c *AddSubcategoryCommand) setSubcategoryID(subcategoryID kernel.UUID) error {
	if err := subcategoryID.Validate(); err != nil {
		return err
	}

	c.subcategoryID = subcategoryID
	return nil
}

func (c *AddSubcategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *AddSubcategoryCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *AddSubcategoryCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}
