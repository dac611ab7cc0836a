package http

import (
	"net/http"

	"library/internal/core/application/usecases/commands"
	"library/internal/core/application/usecases/queries"
	"library/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetCategories handles GET /api/v1/categories - lists all categories with
// their subcategories.
func (s *Server) GetCategories(c echo.Context) error {
	query := queries.NewGetCategoriesQuery()

	categories, err := s.handlers.GetCategories.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	response := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		subcategories := make([]SubcategoryResponse, len(cat.Subcategories))
		for j, sub := range cat.Subcategories {
			subcategories[j] = SubcategoryResponse{
				ID:    sub.ID.String(),
				Title: sub.Title,
			}
		}
		response[i] = CategoryResponse{
			ID:            cat.ID.String(),
			Title:         cat.Title,
			Subcategories: subcategories,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// AddCategory handles POST /api/v1/categories - creates a category.
func (s *Server) AddCategory(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CategoryRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	categoryID := kernel.NewUUID()
	cmd, err := commands.NewAddCategoryCommand(categoryID, actor.Role(), req.Title)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.handlers.AddCategory.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: categoryID.String()})
}

// AddSubcategory handles POST /api/v1/categories/:id/subcategories - creates
// a subcategory under an existing category.
func (s *Server) AddSubcategory(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	categoryID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	var req CategoryRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	subcategoryID := kernel.NewUUID()
	cmd, err := commands.NewAddSubcategoryCommand(subcategoryID, categoryID, actor.Role(), req.Title)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.handlers.AddSubcategory.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: subcategoryID.String()})
}
