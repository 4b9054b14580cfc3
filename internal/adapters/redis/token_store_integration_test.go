package redis_adapter

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/pkg/redis"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisTokenStore(t *testing.T) {
	addr := os.Getenv("SIX_CITIES_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SIX_CITIES_TEST_REDIS_ADDR is not set")
	}
	ctx := context.Background()

	client, err := redis.NewClient(ctx, redis.Config{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewTokenStore(client)
	require.NoError(t, err)

	token := domain.NewToken(uuid.New(), time.Minute)
	require.NoError(t, store.Save(ctx, token))

	ttl, err := client.TTL(ctx, tokenKey(token.ID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	found, err := store.Lookup(ctx, token.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, token.UserID, found.UserID)
	assert.WithinDuration(t, token.ExpiresAt, found.ExpiresAt, time.Millisecond)

	require.NoError(t, store.Delete(ctx, token.ID))
	found, err = store.Lookup(ctx, token.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	expired := domain.NewToken(uuid.New(), time.Minute)
	expired.ExpiresAt = time.Now().Add(-time.Second)
	assert.Error(t, store.Save(ctx, expired))
}
