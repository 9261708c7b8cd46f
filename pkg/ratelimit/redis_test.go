package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStoreCountsWithinWindow(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	for want := 1; want <= 4; want++ {
		count, resetAt, err := store.Incr(ctx, "rl:apply:1.2.3.4", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, want, count)
		assert.True(t, resetAt.After(time.Now()))
	}
}

func TestRedisStoreWindowReset(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := store.Incr(ctx, "rl:apply:1.2.3.4", time.Hour)
		require.NoError(t, err)
	}

	// Expire the window: the next increment starts a fresh counter
	mr.FastForward(time.Hour + time.Second)

	count, _, err := store.Incr(ctx, "rl:apply:1.2.3.4", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRedisStoreErrorSurfaces(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, _, err := store.Incr(context.Background(), "rl:apply:1.2.3.4", time.Hour)
	assert.Error(t, err)
}
