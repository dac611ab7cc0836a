package kernel

import (
	"fmt"
	"time"

	"library/internal/pkg/errs"
)

// ErrDueDateIsNotConstructed indicates that a DueDate was not created through
// one of the constructor functions. The zero value of DueDate is invalid.
var ErrDueDateIsNotConstructed = errs.NewValueIsRequiredError(
	"due date must be created via NewDueDate or RestoreDueDate",
)

// DueDate is a value object holding the date by which a borrowed book must be
// returned. A due date set at order creation may not exceed the end of the
// month following the current month.
//
// DueDate is immutable. Only the date part is significant; time-of-day is
// truncated on construction.
type DueDate struct {
	value time.Time
}

// NewDueDate creates a due date for a new order, validating it against the
// booking window: the date must not be later than the last day of the month
// following the current month.
//
// Example:
//
//	due, err := kernel.NewDueDate(time.Now().AddDate(0, 1, 0))
//	if err != nil {
//	    // date is outside the allowed booking window
//	}
func NewDueDate(value time.Time) (DueDate, error) {
	return newDueDateAt(value, time.Now())
}

func newDueDateAt(value time.Time, now time.Time) (DueDate, error) {
	if value.IsZero() {
		return DueDate{}, errs.NewValueIsRequiredError("due date")
	}

	day := truncateToDay(value)
	limit := endOfNextMonth(now)
	if day.After(limit) {
		return DueDate{}, errs.NewValueIsInvalidErrorWithCause(
			"due date",
			fmt.Errorf("%s is later than the end of next month (%s)",
				day.Format(time.DateOnly), limit.Format(time.DateOnly)),
		)
	}

	return DueDate{value: day}, nil
}

// RestoreDueDate reconstructs a due date from persistence. The booking-window
// check is deliberately skipped: a stored order legitimately outlives the
// window that applied when it was created.
func RestoreDueDate(value time.Time) (DueDate, error) {
	if value.IsZero() {
		return DueDate{}, errs.NewValueIsRequiredError("due date")
	}
	return DueDate{value: truncateToDay(value)}, nil
}

// Time returns the due date as a time.Time truncated to midnight UTC.
func (d DueDate) Time() time.Time {
	return d.value
}

// IsPast reports whether the due date lies strictly before the date part of now.
func (d DueDate) IsPast(now time.Time) bool {
	return d.value.Before(truncateToDay(now))
}

// IsEqual compares two due dates by their date value.
func (d DueDate) IsEqual(other DueDate) bool {
	return d.value.Equal(other.value)
}

// String returns the due date in YYYY-MM-DD form.
func (d DueDate) String() string {
	return d.value.Format(time.DateOnly)
}

// Validate checks that the due date was created through a constructor.
// The zero value fails with ErrDueDateIsNotConstructed.
func (d DueDate) Validate() error {
	if d.value.IsZero() {
		return ErrDueDateIsNotConstructed
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// endOfNextMonth returns the last day of the month following now's month.
func endOfNextMonth(now time.Time) time.Time {
	y, m, _ := now.Date()
	firstOfThisMonth := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return firstOfThisMonth.AddDate(0, 2, -1)
}
