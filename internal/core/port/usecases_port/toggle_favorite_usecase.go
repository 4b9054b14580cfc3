package usecases_port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

type ToggleFavoriteUseCasePort interface {
	// Execute applies status to the (user, offer) pair and returns the offer with the applied flag.
	Execute(ctx context.Context, user *domain.User, offer *domain.Offer, status domain.FavoriteStatus) (*domain.FavoriteOffer, error)
}
