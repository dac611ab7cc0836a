package commands

import (
	"context"
	"errors"

	"library/internal/core/domain/model/book"
	"library/internal/core/domain/services"
)

// AddBookCommandHandler handles adding books to the catalog.
// Only staff roles may manage the catalog.
type AddBookCommandHandler struct {
	uowFactory BookUoWFactory
	policy     services.AccessPolicy
}

// NewAddBookCommandHandler creates a handler for catalog additions.
func NewAddBookCommandHandler(uowFactory BookUoWFactory) AddBookCommandHandler {
	return AddBookCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the add book command.
// Returns services.ErrForbidden when the actor may not manage the catalog.
func (h AddBookCommandHandler) Handle(ctx context.Context, cmd AddBookCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.CanManageCatalog(cmd.ActorRole()) {
		return services.ErrForbidden
	}

	newBook, err := book.NewBook(cmd.BookID(), cmd.Title(), cmd.Author(), cmd.CategoryID(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = errors.Join(
		newBook.UpdateCatalogInfo(cmd.Title(), cmd.Author(), cmd.Description(), cmd.Language(), cmd.EditionYear()),
		newBook.SetSubcategory(cmd.SubcategoryID()),
	); err != nil {
		return err
	}
	newBook.SetInventoryNumber(cmd.InventoryNumber())
	newBook.SetOrderable(cmd.IsPossibleToOrder())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BookRepository().Add(ctx, newBook); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
