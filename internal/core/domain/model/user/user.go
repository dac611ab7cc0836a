// Package user contains the User entity and the Role enum that governs
// authorization decisions across the application.
package user

import (
	"errors"
	"fmt"

	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User represents an account in the library system. Each user holds exactly
// one Role at a time; ownership of orders and reviews is by user identity,
// not by role.
//
// User invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty email
//   - Role must be one of the valid Role values
type User struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	role      Role

	guard guard.ConstructorGuard
}

// NewUser creates a new User with validation. Accounts themselves come from
// the identity service; this constructor exists for registering the local
// projection of an account.
func NewUser(id kernel.UUID, firstName, lastName, email, phone string, role Role) (*User, error) {
	return RestoreUser(id, firstName, lastName, email, phone, role)
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.UUID, firstName, lastName, email, phone string, role Role) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.firstName = firstName
	u.lastName = lastName
	u.phone = phone
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.firstName, u.lastName)
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Phone returns the user's contact phone number.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user's current role.
func (u *User) Role() Role {
	return u.role
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
