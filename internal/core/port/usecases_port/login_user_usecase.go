package usecases_port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

type LoginUserUseCasePort interface {
	// Execute returns the user and a freshly issued bearer token.
	Execute(ctx context.Context, email, password string) (*domain.User, string, error)
}
