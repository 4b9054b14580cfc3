package usecase

import (
	"context"
	"fmt"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

type ListOffersUseCase struct {
	offerStore   port.OfferStorePort
	defaultLimit int
}

func NewListOffersUseCase(offerStore port.OfferStorePort, defaultLimit int) *ListOffersUseCase {
	return &ListOffersUseCase{
		offerStore:   offerStore,
		defaultLimit: defaultLimit,
	}
}

// Execute lists the newest offers. When viewer is set every offer carries
// the viewer's favorite flag, anonymous callers get false everywhere.
func (uc *ListOffersUseCase) Execute(ctx context.Context, viewer *domain.User, limit int) ([]domain.FavoriteOffer, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListOffers",
		"limit":    limit,
	})
	if viewer != nil {
		ucLogger = ucLogger.WithFields(port.Fields{"user_id": viewer.ID.String()})
	}

	ucLogger.Info("Use case started", nil)

	offers, err := uc.offerStore.Find(ctx, limit)
	if err != nil {
		ucLogger.Error("Offer store failed to list offers", err, nil)
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	result := make([]domain.FavoriteOffer, 0, len(offers))
	for _, offer := range offers {
		result = append(result, domain.FavoriteOffer{
			Offer:      offer,
			IsFavorite: viewer != nil && viewer.HasFavorite(offer.ID),
		})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(result)})
	return result, nil
}
