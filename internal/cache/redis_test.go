package cache

import (
	"context"
	"testing"
	"time"

	"dicefit-api/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, time.Minute), srv
}

func TestRedisCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)

	plans := []models.Plan{{ID: 1, Name: "Basico", Price: 89.9}}
	require.NoError(t, c.Set(ctx, "plans", plans))

	assert.True(t, srv.Exists("dicefit:plans"))
	assert.Equal(t, time.Minute, srv.TTL("dicefit:plans"))

	var got []models.Plan
	hit, err := c.Get(ctx, "plans", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, plans, got)
}

func TestRedisCache_MissAndExpiry(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)

	var got []models.Exercise
	hit, err := c.Get(ctx, "exercises:all", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "exercises:all", []models.Exercise{{ID: 1}}))
	srv.FastForward(2 * time.Minute)

	hit, err = c.Get(ctx, "exercises:all", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)

	require.NoError(t, c.Set(ctx, "plans", []int{1}))
	require.NoError(t, c.Set(ctx, "exercises:all", []int{2}))
	require.NoError(t, c.Delete(ctx, "plans", "exercises:all"))

	assert.False(t, srv.Exists("dicefit:plans"))
	assert.False(t, srv.Exists("dicefit:exercises:all"))
	assert.NoError(t, c.Delete(ctx))
}

func TestRedisCache_ServerDown(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)
	srv.Close()

	var got []models.Plan
	hit, err := c.Get(ctx, "plans", &got)
	assert.Error(t, err)
	assert.False(t, hit)
	assert.Error(t, c.Set(ctx, "plans", []models.Plan{}))
}

func TestNew_NilClientIsNoop(t *testing.T) {
	c := New(nil, time.Minute)
	assert.IsType(t, NoopCache{}, c)

	hit, err := c.Get(context.Background(), "plans", &[]models.Plan{})
	assert.NoError(t, err)
	assert.False(t, hit)
}
