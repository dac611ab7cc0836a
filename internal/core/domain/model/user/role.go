package user

import (
	"fmt"

	"library/internal/pkg/errs"
)

// Role represents the access-control class of a user. It is the single owner
// of role constants in the system; every authorization decision imports this
// type instead of keeping parallel string literals in sync.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Admin has full access, including everything a Librarian may do.
	Admin

	// Librarian manages the catalogue and processes borrowing orders.
	Librarian

	// Student may browse the catalogue and manage their own orders.
	Student
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Admin:       "Admin",
		Librarian:   "Librarian",
		Student:     "Student",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:     "Admin",
		Librarian: "Librarian",
		Student:   "Student",
	}
}

// RoleFromString parses a role name as stored in the database.
// Returns an error for anything other than "Admin", "Librarian" or "Student";
// an unrecognized stored role is a data-integrity problem, never a default.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are: Admin, Librarian, Student.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
