package rest

import (
	"context"
	"net/http"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// OfferMiddleware loads the offer named by the {offerId} path parameter.
type OfferMiddleware struct {
	getOfferUC usecases_port.GetOfferUseCasePort
}

func NewOfferMiddleware(getOfferUC usecases_port.GetOfferUseCasePort) *OfferMiddleware {
	return &OfferMiddleware{getOfferUC: getOfferUC}
}

// RequireOffer answers 404 for malformed and unknown ids, since no offer can
// match a malformed one, and otherwise stores the offer in the context.
func (m *OfferMiddleware) RequireOffer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())

		offerID, err := domain.ParseID(chi.URLParam(r, "offerId"))
		if err != nil {
			logger.Debug("Malformed offer id", port.Fields{"reason": err.Error()})
			writeUseCaseError(w, logger, domain.ErrOfferNotFound)
			return
		}

		offer, err := m.getOfferUC.Execute(r.Context(), offerID)
		if err != nil {
			writeUseCaseError(w, logger, err)
			return
		}

		ctx := context.WithValue(r.Context(), offerKey, offer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireFavoriteStatus validates the {status} path parameter before
// anything else touches the request.
func RequireFavoriteStatus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := domain.ParseFavoriteStatus(chi.URLParam(r, "status"))
		if err != nil {
			writeUseCaseError(w, contextkeys.LoggerFromContext(r.Context()), err)
			return
		}

		ctx := context.WithValue(r.Context(), favoriteStatusKey, status)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
