package usecases_port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

type UpdateAvatarUseCasePort interface {
	Execute(ctx context.Context, user *domain.User, link string) (*domain.User, error)
}
