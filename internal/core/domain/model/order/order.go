package order

import (
	"errors"
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a student's request to borrow a specific book. It is the
// aggregate root that manages the borrowing lifecycle from creation through
// fulfillment to reversal.
//
// Order follows these invariants:
//   - Owner and book references are immutable after creation
//   - Status transitions follow the state machine defined on Status
//   - The inventory effect of a transition is reported exactly once,
//     by ChangeStatus, to be applied by the caller in the same transaction
type Order struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	bookID      kernel.UUID
	status      Status
	comment     string
	createdTime time.Time
	dueTime     kernel.DueDate

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in Pending status. Inventory is not touched at
// creation time; availability is the caller's precondition and copies are
// consumed only at fulfillment.
func NewOrder(id, ownerID, bookID kernel.UUID, dueTime kernel.DueDate, comment string) (*Order, error) {
	o := &Order{
		status:      Pending,
		comment:     comment,
		createdTime: time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setBookID(bookID),
		o.setDueTime(dueTime),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. A stored status outside
// the known enum fails with ErrInvalidStatus so that corruption is caught at
// the repository boundary instead of propagating into business logic.
func RestoreOrder(
	id, ownerID, bookID kernel.UUID,
	status Status,
	comment string,
	createdTime time.Time,
	dueTime kernel.DueDate,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setBookID(bookID),
		o.setDueTime(dueTime),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.comment = comment
	o.createdTime = createdTime
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// IsOwnedBy reports whether the order belongs to the given user.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID.IsEqual(userID)
}

// ChangeStatus applies the transition to target and returns the inventory
// effect the caller must apply to the order's book within the same
// transaction. The effect is reported exactly once per edge: a repeated
// fulfillment attempt fails with ErrImmutable instead of reserving twice.
func (o *Order) ChangeStatus(target Status) (InventoryEffect, error) {
	if err := o.status.ValidateTransition(target); err != nil {
		return EffectNone, err
	}

	effect := o.status.TransitionEffect(target)
	o.status = target
	return effect, nil
}

// UpdateComment replaces the free-text comment.
func (o *Order) UpdateComment(comment string) {
	o.comment = comment
}

// UpdateDueTime replaces the due date.
func (o *Order) UpdateDueTime(dueTime kernel.DueDate) error {
	return o.setDueTime(dueTime)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the student who placed the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// BookID returns the identifier of the ordered book.
func (o *Order) BookID() kernel.UUID {
	return o.bookID
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Comment returns the free-text comment attached to the order.
func (o *Order) Comment() string {
	return o.comment
}

// CreatedTime returns when the order was created.
func (o *Order) CreatedTime() time.Time {
	return o.createdTime
}

// DueTime returns the date by which the book must be returned.
func (o *Order) DueTime() kernel.DueDate {
	return o.dueTime
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}
	o.bookID = bookID
	return nil
}

func (o *Order) setDueTime(dueTime kernel.DueDate) error {
	if err := dueTime.Validate(); err != nil {
		return err
	}
	o.dueTime = dueTime
	return nil
}
