// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// UserRepository defines the interface for salon account persistence operations.
type UserRepository interface {
	// Create creates a new salon account in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves an account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByEmail checks if an account with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
