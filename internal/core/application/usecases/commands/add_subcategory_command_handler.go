package commands

import (
	"context"

	"library/internal/core/domain/model/category"
	"library/internal/core/domain/services"
)

// AddSubcategoryCommandHandler handles adding subcategories.
// The parent category is loaded first so a dangling reference cannot be
// created.
type AddSubcategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
	policy     services.AccessPolicy
}

// NewAddSubcategoryCommandHandler creates a handler for subcategory additions.
func NewAddSubcategoryCommandHandler(uowFactory CategoryUoWFactory) AddSubcategoryCommandHandler {
	return AddSubcategoryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the add subcategory command.
// Returns services.ErrForbidden when the actor may not manage the catalog.
func (h AddSubcategoryCommandHandler) Handle(ctx context.Context, cmd AddSubcategoryCommand) error {
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

	categoryRepo := uow.CategoryRepository()

	parent, err := categoryRepo.Get(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	newSubcategory, err := category.NewSubcategory(cmd.SubcategoryID(), cmd.Title(), parent.ID())
	if err != nil {
		return err
	}

	if err = categoryRepo.AddSubcategory(ctx, newSubcategory); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
