//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-desk/internal/pkg/config"
	"venue-desk/internal/usecase/shared"
)

type entry struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

func setupTestCache(t *testing.T, ttl time.Duration) *RedisAvailabilityCache {
	t.Helper()
	client := NewClient(config.RedisConfig{Addr: "localhost:6379"})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := Ping(ctx, client); err != nil {
		t.Skip("Redis not available")
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisAvailabilityCache(client, ttl).WithPrefix("test:" + uuid.NewString())
}

// missThenSet fills key the way a search does: a miss, then a write under the generation it saw.
func missThenSet(t *testing.T, c *RedisAvailabilityCache, key string, value any) {
	t.Helper()
	ctx := context.Background()
	var scratch any
	gen, hit, err := c.Get(ctx, key, &scratch)
	require.NoError(t, err)
	require.False(t, hit)
	require.NoError(t, c.Set(ctx, gen, key, value))
}

func TestRedisAvailabilityCache(t *testing.T) {
	c := setupTestCache(t, 30*time.Second)
	ctx := context.Background()

	t.Run("miss on unknown key", func(t *testing.T) {
		var got []entry
		_, hit, err := c.Get(ctx, "places:unknown", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("stored value is read back", func(t *testing.T) {
		want := []entry{{Name: "Left", Enabled: true}, {Name: "Right"}}
		missThenSet(t, c, "areas:1", want)

		var got []entry
		_, hit, err := c.Get(ctx, "areas:1", &got)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, want, got)
	})

	t.Run("invalidate drops every entry", func(t *testing.T) {
		missThenSet(t, c, "places:1", []entry{{Name: "Hall A"}})
		require.NoError(t, c.Invalidate(ctx))

		var got []entry
		_, hit, err := c.Get(ctx, "places:1", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("result computed before an invalidation is not served after it", func(t *testing.T) {
		var got []entry
		gen, hit, err := c.Get(ctx, "places:2", &got)
		require.NoError(t, err)
		require.False(t, hit)

		require.NoError(t, c.Invalidate(ctx))
		require.NoError(t, c.Set(ctx, gen, "places:2", []entry{{Name: "Hall A", Enabled: true}}))

		next, hit, err := c.Get(ctx, "places:2", &got)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Greater(t, next, gen)
	})

	t.Run("unknown generation is never written", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, shared.NoCacheGeneration, "places:3", []entry{{Name: "Hall B"}}))

		var got []entry
		_, hit, err := c.Get(ctx, "places:3", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})
}

func TestRedisAvailabilityCache_TTL(t *testing.T) {
	c := setupTestCache(t, time.Second)
	ctx := context.Background()

	missThenSet(t, c, "places:ttl", []entry{{Name: "Hall B"}})
	time.Sleep(1500 * time.Millisecond)

	var got []entry
	_, hit, err := c.Get(ctx, "places:ttl", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNoopAvailabilityCache(t *testing.T) {
	var c NoopAvailabilityCache
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, "k", 1))
	var got int
	gen, hit, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, shared.NoCacheGeneration, gen)
	assert.NoError(t, c.Invalidate(ctx))
}
