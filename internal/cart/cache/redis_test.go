package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/ridloal/product-dashboard-api/internal/cart/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client), mr
}

func testView() *domain.CartView {
	return &domain.CartView{
		Items: []domain.CartItem{
			{ID: 1, ProductID: 4, ProductName: "Margherita Pizza", Quantity: 2, UnitPrice: decimal.RequireFromString("11.99")},
		},
		Subtotal:   decimal.RequireFromString("23.98"),
		Tax:        decimal.RequireFromString("2.40"),
		Total:      decimal.RequireFromString("26.38"),
		TotalItems: 2,
	}
}

func TestRedisCache_SetThenGet(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "session-a", testView()))

	got, err := cache.Get(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalItems)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Margherita Pizza", got.Items[0].ProductName)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("26.38")))
}

func TestRedisCache_MissingKeyIsCacheMiss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	_, err := cache.Get(context.Background(), "never-seen")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_GetRejectsCorruptPayload(t *testing.T) {
	cache, mr := setupTestRedis(t)

	require.NoError(t, mr.Set(cacheKey("session-a"), "{not json"))
	_, err := cache.Get(context.Background(), "session-a")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	view := testView()
	data, err := json.Marshal(view)
	require.NoError(t, err)
	require.NoError(t, mr.Set(cacheKey("session-a"), string(data)))

	require.NoError(t, cache.Delete(ctx, "session-a"))
	assert.False(t, mr.Exists(cacheKey("session-a")))

	// Deleting a key that is already gone is fine.
	assert.NoError(t, cache.Delete(ctx, "session-a"))
}

func TestRedisCache_EntriesExpire(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "session-a", testView()))

	mr.FastForward(cache.baseTTL + 5*time.Minute) // past base TTL plus max jitter
	_, err := cache.Get(ctx, "session-a")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
