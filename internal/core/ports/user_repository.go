package ports

import (
	"context"

	"pickleshop/internal/core/domain/model/account"
	"pickleshop/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for customer accounts.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user aggregate by its normalized email.
	// Returns errs.ErrObjectNotFound when no account exists for the email.
	GetByEmail(ctx context.Context, email kernel.EmailAddress) (*account.User, error)
}
