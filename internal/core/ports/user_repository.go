package ports

import (
	"context"

	"github.com/esdoorn/practice-api/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// List returns all users ordered by username ascending. Password hashes
	// are never populated on the returned records.
	List(ctx context.Context) ([]domain.User, error)
}
