// Package category contains the catalogue classification entities.
package category

import (
	"errors"

	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

var (
	// ErrCategoryIsNotConstructed is returned for Category instances not
	// created through the NewCategory factory function.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

	// ErrSubcategoryIsNotConstructed is returned for Subcategory instances not
	// created through the NewSubcategory factory function.
	ErrSubcategoryIsNotConstructed = errors.New("Subcategory must be created via NewSubcategory constructor")
)

// Category is a top-level catalogue classification.
type Category struct {
	id    kernel.UUID
	title string

	guard guard.ConstructorGuard
}

// NewCategory creates a category with a non-empty title.
func NewCategory(id kernel.UUID, title string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &Category{
		id:    id,
		title: title,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Category instance was properly constructed.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Title returns the category's title.
func (c *Category) Title() string {
	return c.title
}

// Rename replaces the category's title.
func (c *Category) Rename(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

// Subcategory is a second-level classification under a Category.
type Subcategory struct {
	id         kernel.UUID
	title      string
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubcategory creates a subcategory under the given category.
func NewSubcategory(id kernel.UUID, title string, categoryID kernel.UUID) (*Subcategory, error) {
	if err := errors.Join(id.Validate(), categoryID.Validate()); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &Subcategory{
		id:         id,
		title:      title,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Subcategory instance was properly constructed.
func (s *Subcategory) Validate() error {
	if s == nil {
		return ErrSubcategoryIsNotConstructed
	}
	return s.guard.Validate(ErrSubcategoryIsNotConstructed)
}

// ID returns the subcategory's unique identifier.
func (s *Subcategory) ID() kernel.UUID {
	return s.id
}

// Title returns the subcategory's title.
func (s *Subcategory) Title() string {
	return s.title
}

// CategoryID returns the identifier of the parent category.
func (s *Subcategory) CategoryID() kernel.UUID {
	return s.categoryID
}
