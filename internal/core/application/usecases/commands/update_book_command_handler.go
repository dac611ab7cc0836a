package commands

import (
	"context"
	"errors"

	"library/internal/core/domain/services"
)

// UpdateBookCommandHandler handles catalog updates for existing books.
// The book row is locked for the update since quantity edits race with
// concurrent fulfillments.
type UpdateBookCommandHandler struct {
	uowFactory BookUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateBookCommandHandler creates a handler for catalog updates.
func NewUpdateBookCommandHandler(uowFactory BookUoWFactory) UpdateBookCommandHandler {
	return UpdateBookCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the update book command.
// Returns services.ErrForbidden when the actor may not manage the catalog.
func (h UpdateBookCommandHandler) Handle(ctx context.Context, cmd UpdateBookCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.CanManageCatalog(cmd.ActorRole()) {
		return services.ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookRepo := uow.BookRepository()

	theBook, err := bookRepo.GetForUpdate(ctx, cmd.BookID())
	if err != nil {
		return err
	}

	if err = errors.Join(
		theBook.UpdateCatalogInfo(cmd.Title(), cmd.Author(), cmd.Description(), cmd.Language(), cmd.EditionYear()),
		theBook.SetSubcategory(cmd.SubcategoryID()),
		theBook.SetQuantity(cmd.Quantity()),
	); err != nil {
		return err
	}
	theBook.SetInventoryNumber(cmd.InventoryNumber())
	theBook.SetOrderable(cmd.IsPossibleToOrder())

	if err = bookRepo.Update(ctx, theBook); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
