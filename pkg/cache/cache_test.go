package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-admin/pkg/cache"
)

type entry struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
}

func setupCache(t *testing.T) (*miniredis.Miniredis, cache.Cache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, cache.NewRedis(client, "test", time.Minute)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	mr, c := setupCache(t)
	key := cache.ListKey("categories", "biz-1")

	var got []entry
	assert.ErrorIs(t, c.GetJSON(ctx, key, &got), cache.ErrMiss)

	want := []entry{{ID: "a", SortOrder: 0}, {ID: "b", SortOrder: 1}}
	require.NoError(t, c.SetJSON(ctx, key, want))
	assert.True(t, mr.Exists("test:list:categories:biz-1"))

	require.NoError(t, c.GetJSON(ctx, key, &got))
	assert.Equal(t, want, got)

	mr.FastForward(2 * time.Minute)
	assert.ErrorIs(t, c.GetJSON(ctx, key, &got), cache.ErrMiss)

	require.NoError(t, c.SetJSON(ctx, key, want))
	require.NoError(t, c.Delete(ctx, key))
	assert.ErrorIs(t, c.GetJSON(ctx, key, &got), cache.ErrMiss)
}

func TestNopCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNop()

	require.NoError(t, c.SetJSON(ctx, "k", 1))
	var v int
	assert.ErrorIs(t, c.GetJSON(ctx, "k", &v), cache.ErrMiss)
	assert.NoError(t, c.Delete(ctx, "k"))
}
