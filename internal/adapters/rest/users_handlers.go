package rest

import (
	"net/http"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/contracts"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port/usecases_port"
)

type UsersHandler struct {
	registerUC     usecases_port.RegisterUserUseCasePort
	loginUC        usecases_port.LoginUserUseCasePort
	logoutUC       usecases_port.LogoutUserUseCasePort
	updateAvatarUC usecases_port.UpdateAvatarUseCasePort
}

func NewUsersHandler(
	registerUC usecases_port.RegisterUserUseCasePort,
	loginUC usecases_port.LoginUserUseCasePort,
	logoutUC usecases_port.LogoutUserUseCasePort,
	updateAvatarUC usecases_port.UpdateAvatarUseCasePort,
) *UsersHandler {
	return &UsersHandler{
		registerUC:     registerUC,
		loginUC:        loginUC,
		logoutUC:       logoutUC,
		updateAvatarUC: updateAvatarUC,
	}
}

// Register handles POST /users/register.
func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Register"})

	var req RegisterUserRequest
	if err := decodeValidated(w, r, contracts.RegisterUserRequest, &req); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	user, err := h.registerUC.Execute(r.Context(), domain.Registration{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		Type:      domain.UserType(req.Type),
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toUserResponse(user))
}

// Login handles POST /users/login.
func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var req LoginUserRequest
	if err := decodeValidated(w, r, contracts.LoginUserRequest, &req); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	user, token, err := h.loginUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, LoginResponse{Token: token, User: toUserResponse(user)})
}

// CheckAuth handles GET /users/login and returns the caller.
func (h *UsersHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	RespondWithJSON(w, http.StatusOK, toUserResponse(user))
}

// Logout handles DELETE /users/logout.
func (h *UsersHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Logout"})

	if err := h.logoutUC.Execute(r.Context(), tokenFromContext(r.Context())); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateAvatar handles POST /users/avatar.
func (h *UsersHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateAvatar"})

	user, ok := userFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateAvatarRequest
	if err := decodeValidated(w, r, contracts.UpdateAvatarRequest, &req); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	updated, err := h.updateAvatarUC.Execute(r.Context(), user, req.AvatarURL)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toUserResponse(updated))
}
