package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ port.UserStorePort      = (*UserStore)(nil)
	_ port.OfferStorePort     = (*OfferStore)(nil)
	_ port.CommentStorePort   = (*CommentStore)(nil)
	_ port.TokenStorePort     = (*TokenStore)(nil)
	_ port.EventPublisherPort = (*EventRecorder)(nil)
)

func newUser(email string) *domain.User {
	return &domain.User{ID: uuid.New(), Email: email, Name: "n", Favorites: []uuid.UUID{}}
}

func TestUserStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	user := newUser("a@b.c")

	require.NoError(t, store.Create(ctx, user))
	assert.ErrorIs(t, store.Create(ctx, newUser("a@b.c")), domain.ErrEmailInUse)

	byID, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	byEmail, err := store.FindByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	missing, err := store.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = store.FindByEmail(ctx, "x@y.z")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserStore_FavoritesAreASet(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	user := newUser("a@b.c")
	require.NoError(t, store.Create(ctx, user))

	first, second := uuid.New(), uuid.New()
	require.NoError(t, store.AddFavorite(ctx, user.ID, first))
	require.NoError(t, store.AddFavorite(ctx, user.ID, first))
	require.NoError(t, store.AddFavorite(ctx, user.ID, second))

	got, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first, second}, got.Favorites)

	require.NoError(t, store.RemoveFavorite(ctx, user.ID, first))
	require.NoError(t, store.RemoveFavorite(ctx, user.ID, first))

	got, err = store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second}, got.Favorites)
}

func TestUserStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	user := newUser("a@b.c")
	require.NoError(t, store.Create(ctx, user))

	got, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	got.Favorites = append(got.Favorites, uuid.New())
	got.Name = "changed"

	again, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Favorites)
	assert.Equal(t, "n", again.Name)
}

func TestUserStore_UnknownUser(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()

	assert.ErrorIs(t, store.AddFavorite(ctx, uuid.New(), uuid.New()), domain.ErrUserNotFound)
	assert.ErrorIs(t, store.RemoveFavorite(ctx, uuid.New(), uuid.New()), domain.ErrUserNotFound)
	assert.ErrorIs(t, store.UpdateAvatar(ctx, uuid.New(), "http://x/y.png"), domain.ErrUserNotFound)
}

func TestUserStore_UpdateAvatar(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	user := newUser("a@b.c")
	require.NoError(t, store.Create(ctx, user))

	require.NoError(t, store.UpdateAvatar(ctx, user.ID, "https://cdn.test/a.png"))

	got, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/a.png", got.AvatarURL)
}

func newOffer(createdAt time.Time) *domain.Offer {
	return &domain.Offer{ID: uuid.New(), Title: "t", City: "Paris", CreatedAt: createdAt}
}

func TestOfferStore_FindByIDsSkipsUnknownAndKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := NewOfferStore()
	now := time.Now()
	a, b := newOffer(now), newOffer(now)
	require.NoError(t, store.Create(ctx, a))
	require.NoError(t, store.Create(ctx, b))

	got, err := store.FindByIDs(ctx, []uuid.UUID{b.ID, uuid.New(), a.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)

	got, err = store.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOfferStore_FindNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	store := NewOfferStore()
	now := time.Now()
	oldest, middle, newest := newOffer(now.Add(-2*time.Hour)), newOffer(now.Add(-time.Hour)), newOffer(now)
	for _, o := range []*domain.Offer{middle, oldest, newest} {
		require.NoError(t, store.Create(ctx, o))
	}

	got, err := store.Find(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newest.ID, got[0].ID)
	assert.Equal(t, middle.ID, got[1].ID)

	all, err := store.Find(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOfferStore_IncCommentCount(t *testing.T) {
	ctx := context.Background()
	store := NewOfferStore()
	offer := newOffer(time.Now())
	require.NoError(t, store.Create(ctx, offer))

	require.NoError(t, store.IncCommentCount(ctx, offer.ID))
	require.NoError(t, store.IncCommentCount(ctx, offer.ID))

	got, err := store.FindByID(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentCount)

	assert.ErrorIs(t, store.IncCommentCount(ctx, uuid.New()), domain.ErrOfferNotFound)

	missing, err := store.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCommentStore_FindByOffer(t *testing.T) {
	ctx := context.Background()
	store := NewCommentStore()
	offerID := uuid.New()
	now := time.Now()

	older := domain.Comment{ID: uuid.New(), OfferID: offerID, CreatedAt: now.Add(-time.Minute)}
	newer := domain.Comment{ID: uuid.New(), OfferID: offerID, CreatedAt: now}
	other := domain.Comment{ID: uuid.New(), OfferID: uuid.New(), CreatedAt: now}
	for _, c := range []domain.Comment{older, newer, other} {
		c := c
		require.NoError(t, store.Create(ctx, &c))
	}

	got, err := store.FindByOffer(ctx, offerID, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)

	got, err = store.FindByOffer(ctx, offerID, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, newer.ID, got[0].ID)
}

func TestTokenStore(t *testing.T) {
	ctx := context.Background()
	store := NewTokenStore()
	token := domain.NewToken(uuid.New(), time.Hour)

	require.NoError(t, store.Save(ctx, token))

	got, err := store.Lookup(ctx, token.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, token.UserID, got.UserID)

	require.NoError(t, store.Delete(ctx, token.ID))
	require.NoError(t, store.Delete(ctx, token.ID))

	got, err = store.Lookup(ctx, token.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEventRecorder(t *testing.T) {
	ctx := context.Background()
	rec := NewEventRecorder()

	require.NoError(t, rec.PublishFavoriteToggled(ctx, domain.FavoriteToggledEvent{IsFavorite: true}))
	require.NoError(t, rec.PublishCommentCreated(ctx, domain.CommentCreatedEvent{Rating: 4}))
	assert.Len(t, rec.FavoriteToggled(), 1)
	assert.Len(t, rec.CommentsCreated(), 1)

	boom := errors.New("broker down")
	rec.FailWith(boom)
	assert.ErrorIs(t, rec.PublishFavoriteToggled(ctx, domain.FavoriteToggledEvent{}), boom)
	assert.Len(t, rec.FavoriteToggled(), 1)
}
