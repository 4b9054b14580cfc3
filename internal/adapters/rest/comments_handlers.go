package rest

import (
	"net/http"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/contracts"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port/usecases_port"
)

type CommentsHandler struct {
	listUC   usecases_port.ListCommentsUseCasePort
	createUC usecases_port.CreateCommentUseCasePort
}

func NewCommentsHandler(listUC usecases_port.ListCommentsUseCasePort, createUC usecases_port.CreateCommentUseCasePort) *CommentsHandler {
	return &CommentsHandler{
		listUC:   listUC,
		createUC: createUC,
	}
}

// ListComments handles GET /comments/{offerId}.
func (h *CommentsHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListComments"})

	offer, ok := offerFromContext(r.Context())
	if !ok {
		logger.Error("Missing offer in context", nil, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	comments, err := h.listUC.Execute(r.Context(), offer.ID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		response = append(response, toCommentResponse(comment))
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// CreateComment handles POST /comments/{offerId}.
func (h *CommentsHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateComment"})

	author, userOK := userFromContext(r.Context())
	offer, offerOK := offerFromContext(r.Context())
	if !userOK || !offerOK {
		logger.Error("Comment route is missing part of its middleware chain", nil, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req CreateCommentRequest
	if err := decodeValidated(w, r, contracts.CreateCommentRequest, &req); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	comment, err := h.createUC.Execute(r.Context(), author, offer, req.Text, req.Rating)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toCommentResponse(*comment))
}
