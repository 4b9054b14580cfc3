package port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/google/uuid"
)

type CommentStorePort interface {
	Create(ctx context.Context, comment *domain.Comment) error
	// FindByOffer returns up to limit comments of the offer, newest first.
	FindByOffer(ctx context.Context, offerID uuid.UUID, limit int) ([]domain.Comment, error)
}
