package usecases_port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

type RegisterUserUseCasePort interface {
	Execute(ctx context.Context, reg domain.Registration) (*domain.User, error)
}
