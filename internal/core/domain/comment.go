package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	CommentTextMinLength = 5
	CommentTextMaxLength = 1024
	CommentRatingMin     = 1
	CommentRatingMax     = 5
)

type Comment struct {
	ID        uuid.UUID
	Text      string
	Rating    int
	OfferID   uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

// CommentWithAuthor - a comment joined with its author for display.
// Author is nil when the user record no longer exists.
type CommentWithAuthor struct {
	Comment
	Author *User
}

// NewComment checks text length (in runes) and rating bounds.
func NewComment(text string, rating int, offerID, userID uuid.UUID) (*Comment, error) {
	length := utf8.RuneCountInString(text)
	if length < CommentTextMinLength || length > CommentTextMaxLength {
		return nil, fmt.Errorf("%w: text length must be between %d and %d characters",
			ErrInvalidComment, CommentTextMinLength, CommentTextMaxLength)
	}
	if rating < CommentRatingMin || rating > CommentRatingMax {
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidComment, CommentRatingMin, CommentRatingMax)
	}
	return &Comment{
		ID:        uuid.New(),
		Text:      text,
		Rating:    rating,
		OfferID:   offerID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}, nil
}
