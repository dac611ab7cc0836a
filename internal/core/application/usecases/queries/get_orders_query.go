// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly and return flat response
// structures; they never load or mutate domain aggregates.
package queries

import (
	"errors"
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/user"
	"library/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders visible to the acting user.
// Staff see every order; students see only their own.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(actorID, user.Student)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders for the acting user.
func NewGetOrdersQuery(actorID kernel.UUID, actorRole user.Role) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setActorID(actorID),
		query.setActorRole(actorRole),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ActorID returns the identifier of the acting user.
func (q GetOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the role of the acting user.
func (q GetOrdersQuery) ActorRole() user.Role {
	return q.actorRole
}

func (q *GetOrdersQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *GetOrdersQuery) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorRole = actorRole
	return nil
}

// GetOrdersQueryResponse represents one order in a listing.
type GetOrdersQueryResponse struct {
	ID          kernel.UUID
	OwnerID     kernel.UUID
	BookID      kernel.UUID
	BookTitle   string
	Status      string
	Comment     string
	CreatedTime time.Time
	DueTime     time.Time
}
