package cache

import (
	"context"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openshop/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(enabled bool) *InMemoryCache {
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = enabled
	cfg.Cache.TTL = time.Minute
	return NewInMemoryCache(cfg)
}

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "product:v1::p1", GenerateKey(PrefixProduct, "p1"))
	assert.Equal(t, "product_discounts:v1::p1:2", GenerateKey(PrefixProductDiscounts, "p1", 2))
	assert.Equal(t, GenerateKey(PrefixProduct, "p1"), ProductKey("p1"))
	assert.Equal(t, GenerateKey(PrefixProductDiscounts, "p1"), ProductDiscountsKey("p1"))

	assert.Equal(t, "product", keyKind(ProductKey("p1")))
	assert.Equal(t, "product_discounts", keyKind(ProductDiscountsKey("p1")))
}

func TestInMemoryCacheUnderSentryTransaction(t *testing.T) {
	client, err := sentry.NewClient(sentry.ClientOptions{EnableTracing: true, TracesSampleRate: 1})
	require.NoError(t, err)
	hub := sentry.NewHub(client, sentry.NewScope())
	ctx := sentry.SetHubOnContext(context.Background(), hub)
	tx := sentry.StartTransaction(ctx, "GET /v1/products/p1")
	defer tx.Finish()

	c := newCache(true)
	c.Set(tx.Context(), ProductKey("p1"), "doc", 0)
	v, ok := c.Get(tx.Context(), ProductKey("p1"))
	require.True(t, ok)
	assert.Equal(t, "doc", v)

	_, ok = c.Get(tx.Context(), ProductKey("p2"))
	assert.False(t, ok)
}

func TestInMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newCache(true)

	c.Set(ctx, "k", "v", 0)
	v, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	c.Delete(ctx, "k")
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestInMemoryCacheDeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	c := newCache(true)

	c.Set(ctx, GenerateKey(PrefixProduct, "a"), 1, 0)
	c.Set(ctx, GenerateKey(PrefixProduct, "b"), 2, 0)
	c.Set(ctx, GenerateKey(PrefixProductDiscounts, "a"), 3, 0)

	c.DeleteByPrefix(ctx, PrefixProduct)

	_, ok := c.Get(ctx, GenerateKey(PrefixProduct, "a"))
	assert.False(t, ok)
	_, ok = c.Get(ctx, GenerateKey(PrefixProduct, "b"))
	assert.False(t, ok)
	_, ok = c.Get(ctx, GenerateKey(PrefixProductDiscounts, "a"))
	assert.True(t, ok)

	c.Flush(ctx)
	_, ok = c.Get(ctx, GenerateKey(PrefixProductDiscounts, "a"))
	assert.False(t, ok)
}

func TestInMemoryCacheExpires(t *testing.T) {
	ctx := context.Background()
	c := newCache(true)

	c.Set(ctx, "short", "v", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	_, ok := c.Get(ctx, "short")
	assert.False(t, ok)
}

func TestDisabledCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := newCache(false)

	c.Set(ctx, "k", "v", 0)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}
