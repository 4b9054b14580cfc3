package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

type RegisterUserUseCase struct {
	userStore port.UserStorePort
}

func NewRegisterUserUseCase(userStore port.UserStorePort) *RegisterUserUseCase {
	return &RegisterUserUseCase{userStore: userStore}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RegisterUser",
		"email":    reg.Email,
	})

	ucLogger.Info("Use case started: attempting to register user", nil)

	existingUser, err := uc.userStore.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(reg.Email)))
	if err != nil {
		ucLogger.Error("User store failed while checking for existing email", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if existingUser != nil {
		ucLogger.Warn("Registration failed: email already in use", nil)
		return nil, domain.ErrEmailInUse
	}

	// password hashing happens inside NewUser
	user, err := domain.NewUser(reg)
	if err != nil {
		ucLogger.Warn("Registration rejected", port.Fields{"reason": err.Error()})
		return nil, err
	}

	ucLogger = ucLogger.WithFields(port.Fields{"user_id": user.ID.String()})

	// the store reports ErrEmailInUse itself when a concurrent registration wins
	if err := uc.userStore.Create(ctx, user); err != nil {
		ucLogger.Error("User store failed to create user", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: user registered successfully", nil)
	return user, nil
}
