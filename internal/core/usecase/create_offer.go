package usecase

import (
	"context"
	"fmt"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

type CreateOfferUseCase struct {
	offerStore port.OfferStorePort
}

func NewCreateOfferUseCase(offerStore port.OfferStorePort) *CreateOfferUseCase {
	return &CreateOfferUseCase{offerStore: offerStore}
}

func (uc *CreateOfferUseCase) Execute(ctx context.Context, host *domain.User, draft domain.OfferDraft) (*domain.Offer, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateOffer",
		"host_id":  host.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	offer, err := domain.NewOffer(host.ID, draft)
	if err != nil {
		ucLogger.Warn("Offer draft rejected", port.Fields{"reason": err.Error()})
		return nil, err
	}

	ucLogger = ucLogger.WithFields(port.Fields{"offer_id": offer.ID.String()})

	if err := uc.offerStore.Create(ctx, offer); err != nil {
		ucLogger.Error("Offer store failed to create offer", err, nil)
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return offer, nil
}
