package mongo_adapter

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/pkg/mongodb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func openDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("SIX_CITIES_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("SIX_CITIES_TEST_MONGO_URI is not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := mongodb.NewClient(ctx, mongodb.Config{
		URI:      uri,
		Database: "six-cities-test-" + uuid.NewString()[:8],
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	require.NoError(t, EnsureIndexes(ctx, db))
	return db
}

func TestMongoStores(t *testing.T) {
	db := openDatabase(t)
	ctx := context.Background()

	users, err := NewUserStore(db)
	require.NoError(t, err)
	offers, err := NewOfferStore(db)
	require.NoError(t, err)
	comments, err := NewCommentStore(db)
	require.NoError(t, err)
	tokens, err := NewTokenStore(db)
	require.NoError(t, err)

	user, err := domain.NewUser(domain.Registration{Email: "keks@example.com", Name: "Keks", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, user))

	offer, err := domain.NewOffer(user.ID, domain.OfferDraft{
		Title:    "Wood and stone place",
		City:     "paris",
		Type:     domain.OfferTypeHouse,
		Rooms:    3,
		Guests:   4,
		Price:    300,
		Location: domain.Location{Latitude: 48.85, Longitude: 2.35},
	})
	require.NoError(t, err)
	require.NoError(t, offers.Create(ctx, offer))

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		dup := *user
		dup.ID = uuid.New()
		assert.ErrorIs(t, users.Create(ctx, &dup), domain.ErrEmailInUse)
	})

	t.Run("favorites have set semantics", func(t *testing.T) {
		require.NoError(t, users.AddFavorite(ctx, user.ID, offer.ID))
		require.NoError(t, users.AddFavorite(ctx, user.ID, offer.ID))

		found, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{offer.ID}, found.Favorites)

		require.NoError(t, users.RemoveFavorite(ctx, user.ID, offer.ID))
		require.NoError(t, users.RemoveFavorite(ctx, user.ID, offer.ID))

		found, err = users.FindByEmail(ctx, "keks@example.com")
		require.NoError(t, err)
		assert.Empty(t, found.Favorites)

		assert.ErrorIs(t, users.AddFavorite(ctx, uuid.New(), offer.ID), domain.ErrUserNotFound)
	})

	t.Run("offers", func(t *testing.T) {
		found, err := offers.FindByIDs(ctx, []uuid.UUID{offer.ID, uuid.New()})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Paris", found[0].City)
		assert.Equal(t, offer.Geohash, found[0].Geohash)

		missing, err := offers.FindByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, missing)

		require.NoError(t, offers.IncCommentCount(ctx, offer.ID))
		reloaded, err := offers.FindByID(ctx, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, reloaded.CommentCount)
	})

	t.Run("comments newest first", func(t *testing.T) {
		older, err := domain.NewComment("First visit", 3, offer.ID, user.ID)
		require.NoError(t, err)
		older.CreatedAt = time.Now().Add(-time.Hour).UTC()
		newer, err := domain.NewComment("Second visit", 5, offer.ID, user.ID)
		require.NoError(t, err)

		require.NoError(t, comments.Create(ctx, older))
		require.NoError(t, comments.Create(ctx, newer))

		list, err := comments.FindByOffer(ctx, offer.ID, 10)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
	})

	t.Run("tokens", func(t *testing.T) {
		token := domain.NewToken(user.ID, time.Hour)
		require.NoError(t, tokens.Save(ctx, token))

		found, err := tokens.Lookup(ctx, token.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.UserID)

		require.NoError(t, tokens.Delete(ctx, token.ID))
		found, err = tokens.Lookup(ctx, token.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
