package ports

import (
	"context"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users. Accounts are
// provisioned by an external identity service, so the application only reads
// and updates profile data and never inserts credentials.
type UserRepository interface {
	// Get retrieves a user by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error
}
