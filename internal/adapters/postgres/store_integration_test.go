package postgres_adapter

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("SIX_CITIES_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("SIX_CITIES_TEST_DATABASE_URL is not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, ApplyMigrations(ctx, pool, contextkeys.LoggerFromContext(ctx)))
	return pool
}

func seedUser(t *testing.T, store *UserStore) *domain.User {
	t.Helper()
	user, err := domain.NewUser(domain.Registration{
		Email:    uuid.NewString() + "@example.com",
		Name:     "Keks",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), user))
	return user
}

func seedOffer(t *testing.T, store *OfferStore, hostID uuid.UUID) *domain.Offer {
	t.Helper()
	offer, err := domain.NewOffer(hostID, domain.OfferDraft{
		Title:        "Beautiful studio near the canal",
		Description:  "A quiet place in the very heart of the city.",
		City:         "amsterdam",
		PreviewImage: "https://example.com/preview.jpg",
		Images:       []string{"https://example.com/1.jpg"},
		Type:         domain.OfferTypeApartment,
		Rooms:        1,
		Guests:       2,
		Price:        120,
		Goods:        []string{"Breakfast"},
		Location:     domain.Location{Latitude: 52.37, Longitude: 4.89},
	})
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), offer))
	return offer
}

func TestPostgresStores(t *testing.T) {
	pool := openPool(t)
	ctx := context.Background()

	users, err := NewUserStore(pool)
	require.NoError(t, err)
	offers, err := NewOfferStore(pool)
	require.NoError(t, err)
	comments, err := NewCommentStore(pool)
	require.NoError(t, err)
	tokens, err := NewTokenStore(pool)
	require.NoError(t, err)

	user := seedUser(t, users)
	offer := seedOffer(t, offers, user.ID)

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

		found, err = users.FindByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Empty(t, found.Favorites)
	})

	t.Run("unknown ids are skipped", func(t *testing.T) {
		found, err := offers.FindByIDs(ctx, []uuid.UUID{offer.ID, uuid.New()})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Amsterdam", found[0].City)

		missing, err := offers.FindByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("comments and counter", func(t *testing.T) {
		comment, err := domain.NewComment("Lovely place", 5, offer.ID, user.ID)
		require.NoError(t, err)
		require.NoError(t, comments.Create(ctx, comment))
		require.NoError(t, offers.IncCommentCount(ctx, offer.ID))

		list, err := comments.FindByOffer(ctx, offer.ID, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Lovely place", list[0].Text)

		reloaded, err := offers.FindByID(ctx, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, reloaded.CommentCount)
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
