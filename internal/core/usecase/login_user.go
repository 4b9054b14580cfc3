package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

type LoginUserUseCase struct {
	userStore  port.UserStorePort
	tokenStore port.TokenStorePort
	tokenSvc   port.TokenServicePort
	tokenTTL   time.Duration
}

func NewLoginUserUseCase(userStore port.UserStorePort, tokenStore port.TokenStorePort, tokenSvc port.TokenServicePort, tokenTTL time.Duration) *LoginUserUseCase {
	return &LoginUserUseCase{
		userStore:  userStore,
		tokenStore: tokenStore,
		tokenSvc:   tokenSvc,
		tokenTTL:   tokenTTL,
	}
}

// Execute checks credentials, registers a new token and returns its bearer string.
func (uc *LoginUserUseCase) Execute(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoginUser",
		"email":    email,
	})
	ucLogger.Info("Use case started: attempting to login user", nil)

	user, err := uc.userStore.FindByEmail(ctx, email)
	if err != nil {
		ucLogger.Error("User store failed to find user by email", err, nil)
		return nil, "", fmt.Errorf("internal server error: %w", err)
	}
	if user == nil {
		ucLogger.Warn("Login failed: user not found", nil)
		return nil, "", domain.ErrInvalidCredentials
	}

	ucLogger = ucLogger.WithFields(port.Fields{"user_id": user.ID.String()})

	if !user.CheckPassword(password) {
		ucLogger.Warn("Login failed: invalid credentials", nil)
		return nil, "", domain.ErrInvalidCredentials
	}

	token := domain.NewToken(user.ID, uc.tokenTTL)
	if err := uc.tokenStore.Save(ctx, token); err != nil {
		ucLogger.Error("Token store failed to save token", err, nil)
		return nil, "", fmt.Errorf("failed to save token: %w", err)
	}

	tokenString, err := uc.tokenSvc.GenerateToken(ctx, token)
	if err != nil {
		ucLogger.Error("Failed to generate token after successful login", err, nil)
		return nil, "", err
	}

	ucLogger.Info("Use case finished: user logged in successfully", port.Fields{"token_id": token.ID.String()})
	return user, tokenString, nil
}
