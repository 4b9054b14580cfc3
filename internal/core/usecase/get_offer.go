package usecase

import (
	"context"
	"fmt"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"

	"github.com/google/uuid"
)

type GetOfferUseCase struct {
	offerStore port.OfferStorePort
}

func NewGetOfferUseCase(offerStore port.OfferStorePort) *GetOfferUseCase {
	return &GetOfferUseCase{offerStore: offerStore}
}

func (uc *GetOfferUseCase) Execute(ctx context.Context, offerID uuid.UUID) (*domain.Offer, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetOffer",
		"offer_id": offerID.String(),
	})

	offer, err := uc.offerStore.FindByID(ctx, offerID)
	if err != nil {
		ucLogger.Error("Offer store lookup failed", err, nil)
		return nil, fmt.Errorf("failed to find offer: %w", err)
	}
	if offer == nil {
		ucLogger.Debug("Offer not found", nil)
		return nil, domain.ErrOfferNotFound
	}
	return offer, nil
}
