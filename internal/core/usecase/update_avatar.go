package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

type UpdateAvatarUseCase struct {
	userStore port.UserStorePort
}

func NewUpdateAvatarUseCase(userStore port.UserStorePort) *UpdateAvatarUseCase {
	return &UpdateAvatarUseCase{userStore: userStore}
}

func (uc *UpdateAvatarUseCase) Execute(ctx context.Context, user *domain.User, link string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateAvatar",
		"user_id":  user.ID.String(),
	})

	link = strings.TrimSpace(link)
	parsed, err := url.ParseRequestURI(link)
	if err != nil || parsed.Host == "" {
		ucLogger.Warn("Avatar link rejected", port.Fields{"link": link})
		return nil, fmt.Errorf("%w: avatar must be an absolute URL", domain.ErrInvalidUser)
	}

	if err := uc.userStore.UpdateAvatar(ctx, user.ID, link); err != nil {
		ucLogger.Error("User store failed to update avatar", err, nil)
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}

	updated := *user
	updated.AvatarURL = link

	ucLogger.Info("Use case finished successfully", nil)
	return &updated, nil
}
