package http

import (
	"net/http"

	"library/internal/core/application/usecases/commands"
	"library/internal/core/application/usecases/queries"
	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - places a new borrowing order.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	bookID, err := kernel.UUIDFromString(req.BookID)
	if err != nil {
		return badRequest(c, "Invalid book_id")
	}

	dueTime, err := kernel.NewDueDate(req.DueTime)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actor.ID(), actor.Role(), bookID, dueTime, req.Comment)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders visible to the caller.
// Staff see every order, students only their own.
func (s *Server) GetOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	query, err := queries.NewGetOrdersQuery(actor.ID(), actor.Role())
	if err != nil {
		return respondError(c, s.logger, err)
	}

	orders, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:          o.ID.String(),
			OwnerID:     o.OwnerID.String(),
			BookID:      o.BookID.String(),
			BookTitle:   o.BookTitle,
			Status:      o.Status,
			Comment:     o.Comment,
			CreatedTime: o.CreatedTime,
			DueTime:     o.DueTime,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateOrder handles PUT /api/v1/orders/:id - changes an order's status and
// optionally its comment and due time.
func (s *Server) UpdateOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	targetStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, "Unknown order status: "+req.Status)
	}

	var dueTime *kernel.DueDate
	if req.DueTime != nil {
		parsed, dueErr := kernel.NewDueDate(*req.DueTime)
		if dueErr != nil {
			return respondError(c, s.logger, dueErr)
		}
		dueTime = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, actor.ID(), actor.Role(), targetStatus, req.Comment, dueTime)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order.
func (s *Server) DeleteOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, actor.ID(), actor.Role())
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
