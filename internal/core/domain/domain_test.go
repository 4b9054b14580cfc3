package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFavoriteStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    FavoriteStatus
		wantErr bool
	}{
		{raw: "1", want: FavoriteStatusAdd},
		{raw: "0", want: FavoriteStatusRemove},
		{raw: "2", wantErr: true},
		{raw: "true", wantErr: true},
		{raw: "", wantErr: true},
		{raw: " 1", wantErr: true},
		{raw: "01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseFavoriteStatus(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFavoriteStatus)
				assert.ErrorIs(t, err, ErrBadRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, FavoriteStatusAdd.IsFavorite())
	assert.False(t, FavoriteStatusRemove.IsFavorite())
}

func TestNewComment_Bounds(t *testing.T) {
	offerID, userID := uuid.New(), uuid.New()

	tests := []struct {
		name   string
		text   string
		rating int
		ok     bool
	}{
		{name: "minimal text", text: "abcde", rating: 1, ok: true},
		{name: "maximal text", text: strings.Repeat("a", 1024), rating: 5, ok: true},
		{name: "multibyte text counts runes", text: "ééééé", rating: 3, ok: true},
		{name: "text too short", text: "abcd", rating: 3},
		{name: "text too long", text: strings.Repeat("a", 1025), rating: 3},
		{name: "rating too low", text: "fine text", rating: 0},
		{name: "rating too high", text: "fine text", rating: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.text, tt.rating, offerID, userID)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidComment)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, offerID, c.OfferID)
			assert.Equal(t, userID, c.UserID)
			assert.NotEqual(t, uuid.Nil, c.ID)
			assert.False(t, c.CreatedAt.IsZero())
		})
	}
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	got, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = ParseID("  " + id.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, raw := range []string{"", "   ", "42", "not-a-uuid"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrInvalidID, raw)
	}
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(Registration{
		Email:    "  Keks@Example.COM ",
		Name:     " Keks ",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "keks@example.com", u.Email)
	assert.Equal(t, "Keks", u.Name)
	assert.Equal(t, UserTypeRegular, u.Type)
	assert.NotEqual(t, "secret", u.PasswordHash)
	assert.Empty(t, u.Favorites)
	assert.NotNil(t, u.Favorites)

	assert.True(t, u.CheckPassword("secret"))
	assert.False(t, u.CheckPassword("Secret"))
}

func TestNewUser_Rejects(t *testing.T) {
	tests := map[string]Registration{
		"malformed email": {Email: "nope", Name: "n", Password: "p"},
		"empty name":      {Email: "a@b.c", Name: " ", Password: "p"},
		"empty password":  {Email: "a@b.c", Name: "n"},
		"unknown type":    {Email: "a@b.c", Name: "n", Password: "p", Type: "admin"},
	}
	for name, reg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewUser(reg)
			assert.ErrorIs(t, err, ErrInvalidUser)
		})
	}
}

func TestUser_HasFavorite(t *testing.T) {
	fav := uuid.New()
	u := &User{Favorites: []uuid.UUID{fav}}

	assert.True(t, u.HasFavorite(fav))
	assert.False(t, u.HasFavorite(uuid.New()))
}

func validDraft() OfferDraft {
	return OfferDraft{
		Title:  " Canal view ",
		City:   "amsterdam",
		Type:   OfferTypeApartment,
		Rooms:  2,
		Guests: 3,
		Price:  120,
		Location: Location{
			Latitude:  52.3909553943508,
			Longitude: 4.85309666406198,
		},
	}
}

func TestNewOffer_Normalizes(t *testing.T) {
	host := uuid.New()

	o, err := NewOffer(host, validDraft())
	require.NoError(t, err)

	assert.Equal(t, "Canal view", o.Title)
	assert.Equal(t, "Amsterdam", o.City)
	assert.Equal(t, host, o.HostID)
	assert.NotNil(t, o.Images)
	assert.NotNil(t, o.Goods)
	assert.Zero(t, o.CommentCount)
	require.Len(t, o.Geohash, 12)
	box := geohash.BoundingBox(o.Geohash)
	assert.True(t, box.Contains(o.Location.Latitude, o.Location.Longitude), o.Geohash)
}

func TestNewOffer_Rejects(t *testing.T) {
	tests := map[string]func(d *OfferDraft){
		"empty title":  func(d *OfferDraft) { d.Title = " " },
		"empty city":   func(d *OfferDraft) { d.City = "" },
		"unknown type": func(d *OfferDraft) { d.Type = "castle" },
		"zero price":   func(d *OfferDraft) { d.Price = 0 },
		"no rooms":     func(d *OfferDraft) { d.Rooms = 0 },
		"bad latitude": func(d *OfferDraft) { d.Location.Latitude = 91 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			d := validDraft()
			mutate(&d)
			_, err := NewOffer(uuid.New(), d)
			assert.ErrorIs(t, err, ErrInvalidOffer)
		})
	}
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, ErrMissingToken, ErrUnauthenticated)
	assert.ErrorIs(t, ErrTokenNotFound, ErrUnauthenticated)
	assert.ErrorIs(t, ErrInvalidCredentials, ErrUnauthenticated)
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrOfferNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailInUse, ErrConflict)
	assert.NotErrorIs(t, ErrOfferNotFound, ErrBadRequest)
}
