package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type OfferType string

const (
	OfferTypeApartment OfferType = "apartment"
	OfferTypeHouse     OfferType = "house"
	OfferTypeRoom      OfferType = "room"
	OfferTypeHotel     OfferType = "hotel"
)

type Location struct {
	Latitude  float64
	Longitude float64
}

// Offer - a rental listing. The favorites workflow treats it as read-only.
type Offer struct {
	ID           uuid.UUID
	Title        string
	Description  string
	City         string
	PreviewImage string
	Images       []string
	IsPremium    bool
	Rating       float64
	Type         OfferType
	Rooms        int
	Guests       int
	Price        int
	Goods        []string
	HostID       uuid.UUID
	Location     Location
	Geohash      string
	CommentCount int
	CreatedAt    time.Time
}

// OfferDraft - input of the create offer use case.
type OfferDraft struct {
	Title        string
	Description  string
	City         string
	PreviewImage string
	Images       []string
	IsPremium    bool
	Type         OfferType
	Rooms        int
	Guests       int
	Price        int
	Goods        []string
	Location     Location
}

// NewOffer builds an offer hosted by hostID: city names are title-cased and
// the location is indexed by its geohash.
func NewOffer(hostID uuid.UUID, d OfferDraft) (*Offer, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidOffer)
	}
	city := strings.TrimSpace(d.City)
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", ErrInvalidOffer)
	}
	switch d.Type {
	case OfferTypeApartment, OfferTypeHouse, OfferTypeRoom, OfferTypeHotel:
	default:
		return nil, fmt.Errorf("%w: unknown offer type %q", ErrInvalidOffer, d.Type)
	}
	if d.Price <= 0 || d.Rooms <= 0 || d.Guests <= 0 {
		return nil, fmt.Errorf("%w: price, rooms and guests must be positive", ErrInvalidOffer)
	}
	if d.Location.Latitude < -90 || d.Location.Latitude > 90 || d.Location.Longitude < -180 || d.Location.Longitude > 180 {
		return nil, fmt.Errorf("%w: location out of range", ErrInvalidOffer)
	}

	images := d.Images
	if images == nil {
		images = []string{}
	}
	goods := d.Goods
	if goods == nil {
		goods = []string{}
	}

	return &Offer{
		ID:           uuid.New(),
		Title:        title,
		Description:  strings.TrimSpace(d.Description),
		City:         cases.Title(language.English).String(city),
		PreviewImage: d.PreviewImage,
		Images:       images,
		IsPremium:    d.IsPremium,
		Type:         d.Type,
		Rooms:        d.Rooms,
		Guests:       d.Guests,
		Price:        d.Price,
		Goods:        goods,
		HostID:       hostID,
		Location:     d.Location,
		Geohash:      geohash.Encode(d.Location.Latitude, d.Location.Longitude),
		CreatedAt:    time.Now().UTC(),
	}, nil
}
