package rest

import (
	"net/http"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/contracts"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port/usecases_port"
)

type OffersHandler struct {
	listUC   usecases_port.ListOffersUseCasePort
	createUC usecases_port.CreateOfferUseCasePort
}

func NewOffersHandler(listUC usecases_port.ListOffersUseCasePort, createUC usecases_port.CreateOfferUseCasePort) *OffersHandler {
	return &OffersHandler{
		listUC:   listUC,
		createUC: createUC,
	}
}

// ListOffers handles GET /offers?limit=N.
func (h *OffersHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListOffers"})

	limit, err := getLimitOrDefault(r)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	viewer, _ := userFromContext(r.Context())
	offers, err := h.listUC.Execute(r.Context(), viewer, limit)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toOfferListResponse(offers))
}

// GetOffer handles GET /offers/{offerId}; the offer comes from RequireOffer.
func (h *OffersHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	offer, ok := offerFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	viewer, authenticated := userFromContext(r.Context())
	RespondWithJSON(w, http.StatusOK, toOfferResponse(*offer, authenticated && viewer.HasFavorite(offer.ID)))
}

// CreateOffer handles POST /offers. The caller becomes the host.
func (h *OffersHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateOffer"})

	host, ok := userFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateOfferRequest
	if err := decodeValidated(w, r, contracts.CreateOfferRequest, &req); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	offer, err := h.createUC.Execute(r.Context(), host, req.toDraft())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toOfferResponse(*offer, false))
}
