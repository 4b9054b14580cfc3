package mongo_adapter

import (
	"fmt"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"

	"github.com/google/uuid"
)

// Identifiers are stored as their canonical string form.

type userDocument struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	Name         string    `bson:"name"`
	Type         string    `bson:"type"`
	AvatarURL    string    `bson:"avatarUrl"`
	PasswordHash string    `bson:"passwordHash"`
	Favorites    []string  `bson:"favorites"`
	CreatedAt    time.Time `bson:"createdAt"`
}

func newUserDocument(u *domain.User) userDocument {
	return userDocument{
		ID:           u.ID.String(),
		Email:        u.Email,
		Name:         u.Name,
		Type:         string(u.Type),
		AvatarURL:    u.AvatarURL,
		PasswordHash: u.PasswordHash,
		Favorites:    idsToStrings(u.Favorites),
		CreatedAt:    u.CreatedAt,
	}
}

func (d userDocument) toDomain() (*domain.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("corrupt user id %q: %w", d.ID, err)
	}
	favorites, err := stringsToIDs(d.Favorites)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:           id,
		Email:        d.Email,
		Name:         d.Name,
		Type:         domain.UserType(d.Type),
		AvatarURL:    d.AvatarURL,
		PasswordHash: d.PasswordHash,
		Favorites:    favorites,
		CreatedAt:    d.CreatedAt,
	}, nil
}

type locationDocument struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type offerDocument struct {
	ID           string           `bson:"_id"`
	Title        string           `bson:"title"`
	Description  string           `bson:"description"`
	City         string           `bson:"city"`
	PreviewImage string           `bson:"previewImage"`
	Images       []string         `bson:"images"`
	IsPremium    bool             `bson:"isPremium"`
	Rating       float64          `bson:"rating"`
	Type         string           `bson:"type"`
	Rooms        int              `bson:"rooms"`
	Guests       int              `bson:"guests"`
	Price        int              `bson:"price"`
	Goods        []string         `bson:"goods"`
	HostID       string           `bson:"hostId"`
	Location     locationDocument `bson:"location"`
	Geohash      string           `bson:"geohash"`
	CommentCount int              `bson:"commentCount"`
	CreatedAt    time.Time        `bson:"createdAt"`
}

func newOfferDocument(o *domain.Offer) offerDocument {
	return offerDocument{
		ID:           o.ID.String(),
		Title:        o.Title,
		Description:  o.Description,
		City:         o.City,
		PreviewImage: o.PreviewImage,
		Images:       o.Images,
		IsPremium:    o.IsPremium,
		Rating:       o.Rating,
		Type:         string(o.Type),
		Rooms:        o.Rooms,
		Guests:       o.Guests,
		Price:        o.Price,
		Goods:        o.Goods,
		HostID:       o.HostID.String(),
		Location:     locationDocument{Latitude: o.Location.Latitude, Longitude: o.Location.Longitude},
		Geohash:      o.Geohash,
		CommentCount: o.CommentCount,
		CreatedAt:    o.CreatedAt,
	}
}

func (d offerDocument) toDomain() (*domain.Offer, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("corrupt offer id %q: %w", d.ID, err)
	}
	hostID, err := uuid.Parse(d.HostID)
	if err != nil {
		return nil, fmt.Errorf("corrupt host id %q: %w", d.HostID, err)
	}
	return &domain.Offer{
		ID:           id,
		Title:        d.Title,
		Description:  d.Description,
		City:         d.City,
		PreviewImage: d.PreviewImage,
		Images:       nonNil(d.Images),
		IsPremium:    d.IsPremium,
		Rating:       d.Rating,
		Type:         domain.OfferType(d.Type),
		Rooms:        d.Rooms,
		Guests:       d.Guests,
		Price:        d.Price,
		Goods:        nonNil(d.Goods),
		HostID:       hostID,
		Location:     domain.Location{Latitude: d.Location.Latitude, Longitude: d.Location.Longitude},
		Geohash:      d.Geohash,
		CommentCount: d.CommentCount,
		CreatedAt:    d.CreatedAt,
	}, nil
}

type commentDocument struct {
	ID        string    `bson:"_id"`
	Text      string    `bson:"text"`
	Rating    int       `bson:"rating"`
	OfferID   string    `bson:"offerId"`
	UserID    string    `bson:"userId"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d commentDocument) toDomain() (*domain.Comment, error) {
	ids, err := stringsToIDs([]string{d.ID, d.OfferID, d.UserID})
	if err != nil {
		return nil, err
	}
	return &domain.Comment{
		ID:        ids[0],
		Text:      d.Text,
		Rating:    d.Rating,
		OfferID:   ids[1],
		UserID:    ids[2],
		CreatedAt: d.CreatedAt,
	}, nil
}

type tokenDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	CreatedAt time.Time `bson:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

func idsToStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func stringsToIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("corrupt id %q: %w", r, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
