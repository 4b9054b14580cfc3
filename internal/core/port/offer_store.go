package port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/google/uuid"
)

// OfferStorePort - rental offers.
type OfferStorePort interface {
	Create(ctx context.Context, offer *domain.Offer) error
	// FindByID returns (nil, nil) when the offer does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
	// FindByIDs returns the existing offers only; unknown ids are skipped without error.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Offer, error)
	// Find returns up to limit offers, newest first.
	Find(ctx context.Context, limit int) ([]domain.Offer, error)
	IncCommentCount(ctx context.Context, id uuid.UUID) error
}
