package rabbitmq

import "time"

type favoriteToggledMessage struct {
	UserID     string    `json:"userId"`
	OfferID    string    `json:"offerId"`
	IsFavorite bool      `json:"isFavorite"`
	OccurredAt time.Time `json:"occurredAt"`
}

type commentCreatedMessage struct {
	CommentID  string    `json:"commentId"`
	OfferID    string    `json:"offerId"`
	UserID     string    `json:"userId"`
	Rating     int       `json:"rating"`
	OccurredAt time.Time `json:"occurredAt"`
}
