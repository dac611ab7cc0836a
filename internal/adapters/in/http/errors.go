package http

import (
	"errors"
	"log/slog"
	"net/http"

	"library/internal/core/application/usecases/commands"
	"library/internal/core/domain/model/book"
	"library/internal/core/domain/model/order"
	"library/internal/core/domain/services"
	"library/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates a use case failure into an HTTP response.
//
// Mapping:
//   - validation failures -> 400
//   - policy denials and immutable orders -> 403
//   - missing aggregates -> 404
//   - inventory and duplicate-review conflicts -> 409
//   - everything else (including corrupt stored data) -> 500, logged
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})

	case errors.Is(err, services.ErrForbidden):
		return c.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Operation is not permitted for this user",
		})

	case errors.Is(err, order.ErrImmutable):
		return c.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, book.ErrInventoryUnavailable),
		errors.Is(err, book.ErrOutOfStock),
		errors.Is(err, commands.ErrReviewAlreadyExists):
		return c.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})

	default:
		logger.Error("request failed",
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// badRequest returns a 400 response with the given message.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
