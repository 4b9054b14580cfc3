package usecases_port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

type ListFavoritesUseCasePort interface {
	Execute(ctx context.Context, user *domain.User) ([]domain.FavoriteOffer, error)
}
