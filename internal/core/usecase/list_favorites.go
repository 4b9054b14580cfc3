package usecase

import (
	"context"
	"fmt"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

type ListFavoritesUseCase struct {
	offerStore port.OfferStorePort
}

func NewListFavoritesUseCase(offerStore port.OfferStorePort) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{offerStore: offerStore}
}

// Execute returns the user's favorite offers, each flagged as favorite.
// Ids whose offers were removed are skipped.
func (uc *ListFavoritesUseCase) Execute(ctx context.Context, user *domain.User) ([]domain.FavoriteOffer, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListFavorites",
		"user_id":  user.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if len(user.Favorites) == 0 {
		ucLogger.Info("User has no favorites", nil)
		return []domain.FavoriteOffer{}, nil
	}

	offers, err := uc.offerStore.FindByIDs(ctx, user.Favorites)
	if err != nil {
		ucLogger.Error("Failed to load favorite offers", err, nil)
		return nil, fmt.Errorf("failed to load favorite offers: %w", err)
	}

	// keep the order in which the user added them
	offerMap := make(map[string]domain.Offer, len(offers))
	for _, offer := range offers {
		offerMap[offer.ID.String()] = offer
	}

	result := make([]domain.FavoriteOffer, 0, len(offers))
	for _, id := range user.Favorites {
		if offer, ok := offerMap[id.String()]; ok {
			result = append(result, domain.FavoriteOffer{Offer: offer, IsFavorite: true})
		}
	}

	if missing := len(user.Favorites) - len(result); missing > 0 {
		ucLogger.Warn("Some favorite offers no longer exist", port.Fields{"missing": missing})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(result)})
	return result, nil
}
