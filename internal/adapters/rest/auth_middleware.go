package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port/usecases_port"
)

const bearerScheme = "Bearer"

type AuthMiddleware struct {
	authUC usecases_port.AuthenticateUseCasePort
}

func NewAuthMiddleware(authUC usecases_port.AuthenticateUseCasePort) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// bearerToken returns "" when the header is absent or not a bearer
// credential. The scheme is matched case-insensitively.
func bearerToken(r *http.Request) string {
	scheme, credentials, found := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return ""
	}
	return strings.TrimSpace(credentials)
}

// Authenticate rejects the request unless its bearer token resolves to a user.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())

		token := bearerToken(r)
		user, err := m.authUC.Execute(r.Context(), token)
		if err != nil {
			writeUseCaseError(w, logger, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user, token)))
	})
}

// OptionalAuthenticate resolves the user when a usable token is present and
// lets anonymous requests through. Stale or foreign tokens are treated as anonymous.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		logger := contextkeys.LoggerFromContext(r.Context())
		user, err := m.authUC.Execute(r.Context(), token)
		switch {
		case err == nil:
			r = r.WithContext(withUser(r.Context(), user, token))
		case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrUserNotFound):
			logger.Debug("Ignoring unusable token on a public route", port.Fields{"reason": err.Error()})
		default:
			writeUseCaseError(w, logger, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func withUser(ctx context.Context, user *domain.User, token string) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	ctx = context.WithValue(ctx, tokenKey, token)
	return contextkeys.ContextWithLogger(ctx, contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"user_id": user.ID.String(),
	}))
}
