package ports

import (
	"context"

	"github.com/esdoorn/practice-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	// Register creates a user. Role defaults to admin when empty.
	Register(ctx context.Context, username, email, password, role string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
