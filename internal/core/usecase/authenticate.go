package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

type AuthenticateUseCase struct {
	tokenSvc   port.TokenServicePort
	tokenStore port.TokenStorePort
	userStore  port.UserStorePort
}

func NewAuthenticateUseCase(tokenSvc port.TokenServicePort, tokenStore port.TokenStorePort, userStore port.UserStorePort) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		tokenSvc:   tokenSvc,
		tokenStore: tokenStore,
		userStore:  userStore,
	}
}

// Execute resolves a bearer string to its user. A token that is absent,
// malformed, revoked or expired yields ErrUnauthenticated; a valid token
// whose user no longer exists yields ErrUserNotFound.
func (uc *AuthenticateUseCase) Execute(ctx context.Context, tokenString string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "Authenticate"})

	if tokenString == "" {
		ucLogger.Debug("No token provided", nil)
		return nil, domain.ErrMissingToken
	}

	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		ucLogger.Warn("Token validation failed", port.Fields{"reason": err.Error()})
		return nil, err
	}

	ucLogger = ucLogger.WithFields(port.Fields{
		"token_id": claims.TokenID.String(),
		"user_id":  claims.UserID.String(),
	})

	token, err := uc.tokenStore.Lookup(ctx, claims.TokenID)
	if err != nil {
		ucLogger.Error("Token store lookup failed", err, nil)
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}
	if token == nil {
		ucLogger.Warn("Token is not registered or was revoked", nil)
		return nil, domain.ErrTokenNotFound
	}
	if token.UserID != claims.UserID || time.Now().After(token.ExpiresAt) {
		ucLogger.Warn("Token record does not match its claims", nil)
		return nil, domain.ErrTokenInvalid
	}

	user, err := uc.userStore.FindByID(ctx, token.UserID)
	if err != nil {
		ucLogger.Error("User store lookup failed", err, nil)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		ucLogger.Warn("Token owner no longer exists", nil)
		return nil, domain.ErrUserNotFound
	}

	ucLogger.Debug("Request authenticated", nil)
	return user, nil
}
