package domain

import (
	"time"

	"github.com/google/uuid"
)

type FavoriteToggledEvent struct {
	UserID     uuid.UUID
	OfferID    uuid.UUID
	IsFavorite bool
	OccurredAt time.Time
}

type CommentCreatedEvent struct {
	CommentID  uuid.UUID
	OfferID    uuid.UUID
	UserID     uuid.UUID
	Rating     int
	OccurredAt time.Time
}
