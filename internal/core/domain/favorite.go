package domain

import "fmt"

// FavoriteStatus is the path flag of the toggle endpoint.
type FavoriteStatus string

const (
	FavoriteStatusRemove FavoriteStatus = "0"
	FavoriteStatusAdd    FavoriteStatus = "1"
)

// ParseFavoriteStatus accepts only the literal values "0" and "1".
func ParseFavoriteStatus(raw string) (FavoriteStatus, error) {
	switch FavoriteStatus(raw) {
	case FavoriteStatusAdd, FavoriteStatusRemove:
		return FavoriteStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidFavoriteStatus, raw)
	}
}

func (s FavoriteStatus) IsFavorite() bool {
	return s == FavoriteStatusAdd
}

// FavoriteOffer - an offer annotated with the viewer's favorite flag.
type FavoriteOffer struct {
	Offer
	IsFavorite bool
}
