package commands

import (
	"errors"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/user"
	"library/internal/pkg/guard"
)

var (
	ErrAddBookCommandIsNotConstructed = errors.New(
		"AddBookCommand must be created via NewAddBookCommand constructor",
	)
	ErrTitleIsRequired    = errors.New("title is required")
	ErrAuthorIsRequired   = errors.New("author is required")
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// AddBookCommand represents a request to add a new book to the catalog.
type AddBookCommand struct { //nolint:recvcheck //using for validation
	bookID            kernel.UUID
	actorRole         user.Role
	title             string
	author            string
	description       string
	categoryID        kernel.UUID
	subcategoryID     *kernel.UUID
	language          string
	editionYear       string
	inventoryNumber   string
	quantity          int
	isPossibleToOrder bool

	guard guard.ConstructorGuard
}

// NewAddBookCommand creates a command to add a book to the catalog.
// Title, author and category are required; the rest is optional metadata.
func NewAddBookCommand(
	bookID kernel.UUID,
	actorRole user.Role,
	title, author, description string,
	categoryID kernel.UUID,
	subcategoryID *kernel.UUID,
	language, editionYear, inventoryNumber string,
	quantity int,
	isPossibleToOrder bool,
) (AddBookCommand, error) {
	bookCommand := AddBookCommand{
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
		bookCommand.setCategoryID(categoryID),
		bookCommand.setSubcategoryID(subcategoryID),
		bookCommand.setQuantity(quantity),
	); err != nil {
		return AddBookCommand{}, err
	}

	return bookCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddBookCommandIsNotConstructed if validation fails.
func (c AddBookCommand) Validate() error {
	return c.guard.Validate(ErrAddBookCommandIsNotConstructed)
}

// BookID returns the identifier for the new book.
func (c AddBookCommand) BookID() kernel.UUID {
	return c.bookID
}

// ActorRole returns the role of the acting user.
func (c AddBookCommand) ActorRole() user.Role {
	return c.actorRole
}

// Title returns the book title.
func (c AddBookCommand) Title() string {
	return c.title
}

// Author returns the book author.
func (c AddBookCommand) Author() string {
	return c.author
}

// Description returns the book description.
func (c AddBookCommand) Description() string {
	return c.description
}

// CategoryID returns the category identifier.
func (c AddBookCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// SubcategoryID returns the optional subcategory identifier.
func (c AddBookCommand) SubcategoryID() *kernel.UUID {
	return c.subcategoryID
}

// Language returns the book language.
func (c AddBookCommand) Language() string {
	return c.language
}

// EditionYear returns the edition year.
func (c AddBookCommand) EditionYear() string {
	return c.editionYear
}

// InventoryNumber returns the library inventory number.
func (c AddBookCommand) InventoryNumber() string {
	return c.inventoryNumber
}

// Quantity returns the number of copies.
func (c AddBookCommand) Quantity() int {
	return c.quantity
}

// IsPossibleToOrder reports whether the book may be borrowed.
func (c AddBookCommand) IsPossibleToOrder() bool {
	return c.isPossibleToOrder
}

func (c *AddBookCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	c.bookID = bookID
	return nil
}

func (c *AddBookCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *AddBookCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *AddBookCommand) setAuthor(author string) error {
	if author == "" {
		return ErrAuthorIsRequired
	}

	c.author = author
	return nil
}

func (c *AddBookCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *AddBookCommand) setSubcategoryID(subcategoryID *kernel.UUID) error {
	if subcategoryID == nil {
		return nil
	}
	if err := subcategoryID.Validate(); err != nil {
		return err
	}

	c.subcategoryID = subcategoryID
	return nil
}

func (c *AddBookCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}

	c.quantity = quantity
	return nil
}
