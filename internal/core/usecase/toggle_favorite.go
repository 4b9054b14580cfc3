package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

type ToggleFavoriteUseCase struct {
	userStore port.UserStorePort
	publisher port.EventPublisherPort
}

func NewToggleFavoriteUseCase(userStore port.UserStorePort, publisher port.EventPublisherPort) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{
		userStore: userStore,
		publisher: publisher,
	}
}

// Execute adds or removes offer from the user's favorites. Both directions
// are idempotent. The offer is expected to exist already.
func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, user *domain.User, offer *domain.Offer, status domain.FavoriteStatus) (*domain.FavoriteOffer, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ToggleFavorite",
		"user_id":  user.ID.String(),
		"offer_id": offer.ID.String(),
		"status":   string(status),
	})

	ucLogger.Info("Use case started", nil)

	var err error
	switch status {
	case domain.FavoriteStatusAdd:
		err = uc.userStore.AddFavorite(ctx, user.ID, offer.ID)
	case domain.FavoriteStatusRemove:
		err = uc.userStore.RemoveFavorite(ctx, user.ID, offer.ID)
	default:
		ucLogger.Warn("Unknown favorite status", nil)
		return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidFavoriteStatus, status)
	}
	if err != nil {
		ucLogger.Error("User store failed to update favorites", err, nil)
		return nil, fmt.Errorf("failed to update favorites: %w", err)
	}

	event := domain.FavoriteToggledEvent{
		UserID:     user.ID,
		OfferID:    offer.ID,
		IsFavorite: status.IsFavorite(),
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.publisher.PublishFavoriteToggled(ctx, event); err != nil {
		ucLogger.Error("Failed to publish favorite event, continuing", err, nil)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &domain.FavoriteOffer{Offer: *offer, IsFavorite: status.IsFavorite()}, nil
}
