// Package userrepo provides data transfer objects and mapping functions for user persistence.
package userrepo

import (
	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
// Role is stored by name; an unknown stored role is a data-integrity error.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	Email     string `gorm:"uniqueIndex"`
	Phone     string
	Role      string
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain entity to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:        aggregate.ID().Bytes(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		Role:      aggregate.Role().String(),
	}
}

// toDomain converts a database DTO to a user domain entity using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.FirstName, dto.LastName, dto.Email, dto.Phone, role)
}
