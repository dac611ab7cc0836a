package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatus indicates that a status value outside the known enum
	// was encountered, typically on a stored record. This is treated as a
	// data-integrity failure, never silently defaulted.
	ErrInvalidStatus = errors.New("order status is not a known value")

	// ErrImmutable indicates that the order's current status admits no further
	// transitions (or no transition to the requested target).
	ErrImmutable = errors.New("order status admits no further transitions")
)

// Status represents the lifecycle state of a borrowing order.
// It implements a state machine with defined transitions:
//
//	Pending ──> Processing ──> Fulfilled ──> Cancelled
//	   │             │             ▲  (reversal releases a copy)
//	   │             └─────────────┤
//	   ├──> Rejected               │  (fulfillment consumes a copy)
//	   └──> Cancelled ─────────────┘
//
// Rejected and Cancelled are terminal. Fulfilled is terminal except for the
// explicit reversal edge to Cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created order,
	// waiting for a librarian to pick it up.
	Pending

	// Processing indicates a librarian is preparing the order.
	Processing

	// Fulfilled indicates the book copy has been handed out.
	// Entering this status consumes one copy of the book's inventory.
	Fulfilled

	// Rejected indicates a librarian declined the order. Terminal.
	Rejected

	// Cancelled indicates the order was withdrawn. When a fulfilled order is
	// cancelled, the consumed copy is returned to inventory. Terminal.
	Cancelled
)

// InventoryEffect describes the book-inventory side effect of a transition edge.
type InventoryEffect int

const (
	// EffectNone means the edge does not touch book inventory.
	EffectNone InventoryEffect = iota

	// EffectReserve means the edge consumes one copy (fulfillment).
	EffectReserve

	// EffectRelease means the edge returns one copy (reversal of fulfillment).
	EffectRelease
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Fulfilled:  "Fulfilled",
		Rejected:   "Rejected",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Fulfilled:  "Fulfilled",
		Rejected:   "Rejected",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses a status name as stored in the database or
// submitted by clients. Matching is case-sensitive; an unrecognized name
// fails with ErrInvalidStatus.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrInvalidStatus, name)
}

// Validate checks if the Status value is one of the known enum values.
// Unknown (0) and out-of-range values fail with ErrInvalidStatus.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no transitions at all.
// Fulfilled is not terminal in this sense: it still has the reversal edge.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Cancelled
}

// ValidateTransition checks whether the edge from s to target is allowed by
// the state machine, independent of who is asking.
//
// Failure modes:
//   - ErrInvalidStatus if either endpoint is outside the known enum
//     (a corrupt stored status surfaces here)
//   - ErrImmutable if s is terminal, or s is Fulfilled and target is not the
//     reversal edge to Cancelled
func (s Status) ValidateTransition(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return fmt.Errorf("%w: order is %s", ErrImmutable, s)
	}

	if s == Fulfilled && target != Cancelled {
		return fmt.Errorf("%w: a fulfilled order can only be cancelled", ErrImmutable)
	}

	return nil
}

// TransitionEffect returns the inventory side effect of the edge from s to
// target. It assumes ValidateTransition has already passed.
//
// Exactly one edge reserves a copy (any non-Fulfilled status to Fulfilled)
// and exactly one releases it (Fulfilled to Cancelled), so effects are
// applied at most once per order lifecycle leg.
func (s Status) TransitionEffect(target Status) InventoryEffect {
	if s != Fulfilled && target == Fulfilled {
		return EffectReserve
	}
	if s == Fulfilled && target == Cancelled {
		return EffectRelease
	}
	return EffectNone
}
