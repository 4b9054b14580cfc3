package usecases_port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

type CreateOfferUseCasePort interface {
	Execute(ctx context.Context, host *domain.User, draft domain.OfferDraft) (*domain.Offer, error)
}
