package usecases_port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

type AuthenticateUseCasePort interface {
	// Execute resolves a bearer token to its user.
	Execute(ctx context.Context, tokenString string) (*domain.User, error)
}
