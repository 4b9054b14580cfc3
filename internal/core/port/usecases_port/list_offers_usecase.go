package usecases_port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

type ListOffersUseCasePort interface {
	// viewer may be nil for anonymous requests.
	Execute(ctx context.Context, viewer *domain.User, limit int) ([]domain.FavoriteOffer, error)
}
