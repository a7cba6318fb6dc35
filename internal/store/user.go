package store

import (
	"context"

	"github.com/taskdeck/api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and assigns its ID and
	// timestamps. The user's HashedPassword must already be set; the
	// store never sees a plaintext password.
	// Returns ErrUsernameExists or ErrEmailExists when the corresponding
	// unique constraint is violated.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByIdentifier retrieves a user whose username or email matches
	// the given identifier. Used for login, where either is accepted.
	// Returns ErrUserNotFound if no user matches.
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
}
