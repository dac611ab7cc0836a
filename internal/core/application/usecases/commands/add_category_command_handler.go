package commands

import (
	"context"

	"library/internal/core/domain/model/category"
	"library/internal/core/domain/services"
)

// AddCategoryCommandHandler handles adding catalog categories.
type AddCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
	policy     services.AccessPolicy
}

// NewAddCategoryCommandHandler creates a handler for category additions.
func NewAddCategoryCommandHandler(uowFactory CategoryUoWFactory) AddCategoryCommandHandler {
	return AddCategoryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the add category command.
// Returns services.ErrForbidden when the actor may not manage the catalog.
func (h AddCategoryCommandHandler) Handle(ctx context.Context, cmd AddCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.CanManageCatalog(cmd.ActorRole()) {
		return services.ErrForbidden
	}

	newCategory, err := category.NewCategory(cmd.CategoryID(), cmd.Title())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CategoryRepository().Add(ctx, newCategory); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
