package rest

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

type contextKey string

const (
	userKey           = contextKey("user")
	tokenKey          = contextKey("token")
	offerKey          = contextKey("offer")
	favoriteStatusKey = contextKey("favoriteStatus")
)

func userFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok && user != nil
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func offerFromContext(ctx context.Context) (*domain.Offer, bool) {
	offer, ok := ctx.Value(offerKey).(*domain.Offer)
	return offer, ok && offer != nil
}

func favoriteStatusFromContext(ctx context.Context) (domain.FavoriteStatus, bool) {
	status, ok := ctx.Value(favoriteStatusKey).(domain.FavoriteStatus)
	return status, ok
}
