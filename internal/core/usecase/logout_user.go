package usecase

import (
	"context"
	"fmt"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

type LogoutUserUseCase struct {
	tokenSvc   port.TokenServicePort
	tokenStore port.TokenStorePort
}

func NewLogoutUserUseCase(tokenSvc port.TokenServicePort, tokenStore port.TokenStorePort) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenSvc:   tokenSvc,
		tokenStore: tokenStore,
	}
}

// Execute revokes the token so that later lookups fail even before it expires.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, tokenString string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "LogoutUser"})

	if tokenString == "" {
		return domain.ErrMissingToken
	}

	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		ucLogger.Warn("Logout with an invalid token", port.Fields{"reason": err.Error()})
		return err
	}

	ucLogger = ucLogger.WithFields(port.Fields{
		"token_id": claims.TokenID.String(),
		"user_id":  claims.UserID.String(),
	})

	if err := uc.tokenStore.Delete(ctx, claims.TokenID); err != nil {
		ucLogger.Error("Token store failed to delete token", err, nil)
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	ucLogger.Info("Use case finished: token revoked", nil)
	return nil
}
