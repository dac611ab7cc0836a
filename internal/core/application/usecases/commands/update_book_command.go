package commands

import (
	"errors"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/user"
	"library/internal/pkg/guard"
)

var ErrUpdateBookCommandIsNotConstructed = errors.New(
	"UpdateBookCommand must be created via NewUpdateBookCommand constructor",
)

// UpdateBookCommand represents a request to update a catalog entry.
// Carries the full editable state of the book; counters derived from orders
// and reviews are not editable through this command.
type UpdateBookCommand struct { //nolint:recvcheck //using for validation
	bookID            kernel.UUID
	actorRole         user.Role
	title             string
	author            string
	description       string
	subcategoryID     *kernel.UUID
	language          string
	editionYear       string
	inventoryNumber   string
	quantity          int
	isPossibleToOrder bool

	guard guard.ConstructorGuard
}

// NewUpdateBookCommand creates a command to update a book's catalog entry.
func NewUpdateBookCommand(
	bookID kernel.UUID,
	actorRole user.Role,
	title, author, description string,
	subcategoryID *kernel.UUID,
	language, editionYear, inventoryNumber string,
	quantity int,
	isPossibleToOrder bool,
) (UpdateBookCommand, error) {
	bookCommand := UpdateBookCommand{
		description:       description,
		language:          language,
		editionYear:       editionYear,
		inventoryNumber:   inventoryNumber,
		isPossibleToOrder: isPossibleToOrder,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookCommand.setBookID(bookID),
		bookCommand.setActorRole(actorRole),
		bookCommand.setTitle(title),
		bookCommand.setAuthor(author),
		bookCommand.setSubcategoryID(subcategoryID),
		bookCommand.setQuantity(quantity),
	); err != nil {
		return UpdateBookCommand{}, err
	}

	return bookCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateBookCommandIsNotConstructed if validation fails.
func (c UpdateBookCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookCommandIsNotConstructed)
}

// BookID returns the identifier of the book being updated.
func (c UpdateBookCommand) BookID() kernel.UUID {
	return c.bookID
}

// ActorRole returns the role of the acting user.
func (c UpdateBookCommand) ActorRole() user.Role {
	return c.actorRole
}

// Title returns the new title.
func (c UpdateBookCommand) Title() string {
	return c.title
}

// Author returns the new author.
func (c UpdateBookCommand) Author() string {
	return c.author
}

// Description returns the new description.
func (c UpdateBookCommand) Description() string {
	return c.description
}

// SubcategoryID returns the new optional subcategory identifier.
func (c UpdateBookCommand) SubcategoryID() *kernel.UUID {
	return c.subcategoryID
}

// Language returns the new language.
func (c UpdateBookCommand) Language() string {
	return c.language
}

// EditionYear returns the new edition year.
func (c UpdateBookCommand) EditionYear() string {
	return c.editionYear
}

// InventoryNumber returns the new inventory number.
func (c UpdateBookCommand) InventoryNumber() string {
	return c.inventoryNumber
}

// Quantity returns the new number of copies.
func (c UpdateBookCommand) Quantity() int {
	return c.quantity
}

// IsPossibleToOrder reports whether the book may be borrowed.
func (c UpdateBookCommand) IsPossibleToOrder() bool {
	return c.isPossibleToOrder
}

func (c *UpdateBookCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	c.bookID = bookID
	return nil
}

func (c *UpdateBookCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *UpdateBookCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *UpdateBookCommand) setAuthor(author string) error {
	if author == "" {
		return ErrAuthorIsRequired
	}

	c.author = author
	return nil
}

func (c *UpdateBookCommand) setSubcategoryID(subcategoryID *kernel.UUID) error {
	if subcategoryID == nil {
		return nil
	}
	if err := subcategoryID.Validate(); err != nil {
		return err
	}

	c.subcategoryID = subcategoryID
	return nil
}

func (c *UpdateBookCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}

	c.quantity = quantity
	return nil
}
