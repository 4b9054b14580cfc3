package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token - an issued credential. The bearer string handed to clients is
// derived from it; the store keeps only this record.
type Token struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

func NewToken(userID uuid.UUID, ttl time.Duration) *Token {
	now := time.Now().UTC()
	return &Token{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Claims - payload recovered from a bearer string.
type Claims struct {
	TokenID uuid.UUID
	UserID  uuid.UUID
}
