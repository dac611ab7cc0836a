package services

import (
	"errors"

	"library/internal/core/domain/model/order"
	"library/internal/core/domain/model/user"
)

// ErrForbidden is returned when the acting user's role (and ownership, where
// relevant) does not permit the requested operation on an order.
var ErrForbidden = errors.New("actor is not permitted to perform this operation on the order")

// anyStatus is a wildcard endpoint in a policy rule.
const anyStatus = order.Status(-1)

// AccessPolicy is a pure, table-driven authorization policy for order
// operations. Given a role, an ownership flag and the statuses involved it
// decides allow or deny, with no side effects. The tables are exhaustive by
// construction: any combination not matched by a rule is denied.
//
// The policy decides only who may ask; whether the state machine permits the
// edge at all is enforced separately by order.Status.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// transitionRule permits role (optionally requiring ownership) to move an
// order from one status to another. anyStatus matches every status.
type transitionRule struct {
	role          user.Role
	requiresOwner bool
	from          order.Status
	to            order.Status
}

// Librarians process orders; admins inherit librarian rights. A student may
// touch only their own order, and only while it is still Pending: they can
// keep editing it (Pending -> Pending) or withdraw it (Pending -> Cancelled).
// Fulfilled, Processing and Rejected are staff-only targets since fulfillment
// moves inventory.
func transitionRules() []transitionRule {
	return []transitionRule{
		{role: user.Librarian, from: anyStatus, to: anyStatus},
		{role: user.Admin, from: anyStatus, to: anyStatus},
		{role: user.Student, requiresOwner: true, from: order.Pending, to: order.Pending},
		{role: user.Student, requiresOwner: true, from: order.Pending, to: order.Cancelled},
	}
}

// deleteRule permits role (optionally requiring ownership) to delete an order
// in the given status.
type deleteRule struct {
	role          user.Role
	requiresOwner bool
	status        order.Status
}

// An owner may delete an order that never consumed inventory (still Pending).
// Staff may clean up finished orders, but only terminal ones: a Fulfilled
// order still holds a reserved copy and must be cancelled first.
func deleteRules() []deleteRule {
	return []deleteRule{
		{role: user.Student, requiresOwner: true, status: order.Pending},
		{role: user.Librarian, status: order.Rejected},
		{role: user.Librarian, status: order.Cancelled},
		{role: user.Admin, status: order.Rejected},
		{role: user.Admin, status: order.Cancelled},
	}
}

// CanCreate reports whether the role may create a new order.
// Only students borrow books.
func (AccessPolicy) CanCreate(role user.Role) bool {
	return role == user.Student
}

// CanTransition reports whether the actor may move an order from current to
// target status. Total over all inputs; unmatched combinations are denied.
func (AccessPolicy) CanTransition(role user.Role, isOwner bool, current, target order.Status) bool {
	for _, rule := range transitionRules() {
		if rule.role != role {
			continue
		}
		if rule.requiresOwner && !isOwner {
			continue
		}
		if rule.from != anyStatus && rule.from != current {
			continue
		}
		if rule.to != anyStatus && rule.to != target {
			continue
		}
		return true
	}
	return false
}

// CanDelete reports whether the actor may delete an order in the given status.
func (AccessPolicy) CanDelete(role user.Role, isOwner bool, status order.Status) bool {
	for _, rule := range deleteRules() {
		if rule.role != role {
			continue
		}
		if rule.requiresOwner && !isOwner {
			continue
		}
		if rule.status != status {
			continue
		}
		return true
	}
	return false
}

// CanViewAll reports whether the role may list orders of other users.
// Students see only their own orders.
func (AccessPolicy) CanViewAll(role user.Role) bool {
	return role == user.Librarian || role == user.Admin
}

// CanManageCatalog reports whether the role may create or modify books,
// categories and subcategories.
func (AccessPolicy) CanManageCatalog(role user.Role) bool {
	return role == user.Librarian || role == user.Admin
}
