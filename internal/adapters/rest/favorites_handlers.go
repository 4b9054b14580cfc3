package rest

import (
	"net/http"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port/usecases_port"
)

type FavoritesHandler struct {
	listUC   usecases_port.ListFavoritesUseCasePort
	toggleUC usecases_port.ToggleFavoriteUseCasePort
}

func NewFavoritesHandler(listUC usecases_port.ListFavoritesUseCasePort, toggleUC usecases_port.ToggleFavoriteUseCasePort) *FavoritesHandler {
	return &FavoritesHandler{
		listUC:   listUC,
		toggleUC: toggleUC,
	}
}

// GetFavorites handles GET /favorites.
func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFavorites"})

	user, ok := userFromContext(r.Context())
	if !ok {
		logger.Error("Missing user in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	offers, err := h.listUC.Execute(r.Context(), user)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toOfferListResponse(offers))
}

// ToggleFavorite handles POST /favorites/{offerId}/{status}. Status, user and
// offer were resolved by the route's middleware chain, in that order.
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ToggleFavorite"})

	status, statusOK := favoriteStatusFromContext(r.Context())
	user, userOK := userFromContext(r.Context())
	offer, offerOK := offerFromContext(r.Context())
	if !statusOK || !userOK || !offerOK {
		logger.Error("Toggle route is missing part of its middleware chain", nil, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	result, err := h.toggleUC.Execute(r.Context(), user, offer, status)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toOfferResponse(result.Offer, result.IsFavorite))
}
