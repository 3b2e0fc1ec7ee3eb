package storefront

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/openshop/storefront/internal/cache"
	"github.com/openshop/storefront/internal/config"
	"github.com/openshop/storefront/internal/domain/account"
	"github.com/openshop/storefront/internal/domain/checkout"
	"github.com/openshop/storefront/internal/domain/discount"
	"github.com/openshop/storefront/internal/domain/order"
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/httpclient"
	"github.com/openshop/storefront/internal/idempotency"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/sentry"
	"github.com/openshop/storefront/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shopper = types.NewCredentials("token-1")

func newTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.GetDefaultConfig()
	cfg.Storefront.BaseURL = srv.URL + "/"
	cfg.Storefront.RetryMax = 0
	cfg.Cache.TTL = time.Minute

	log := logger.NewNopLogger()
	hc := httpclient.NewDefaultClient(httpclient.NewClientConfig(cfg), log)
	return NewClient(cfg, hc, cache.NewInMemoryCache(cfg), sentry.NewSentryService(cfg, log), log)
}

func TestGetProductIsCached(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/product/p1", r.URL.Path)
		assert.Empty(t, r.Header.Get(types.HeaderAccessToken))
		_, _ = w.Write([]byte(`{"_id":"p1","name":"Lamp","price":40,"stock":3,"max_discount":10}`))
	}))

	ctx := context.Background()
	p, err := c.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Lamp", p.Name)

	_, err = c.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestListDiscountsByProduct(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discount/by-product/p1", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"_id":"d1","code":"SPRING","type":"percentage","value":15},
			{"_id":"d2","code":"B2G1","type":"buy-x-get-y","value":{"buyQuantity":2,"getFreeQuantity":1}}
		]`))
	}))

	discounts, err := c.ListDiscountsByProduct(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, discounts, 2)
	assert.Equal(t, types.DiscountKindPercentage, discounts[0].Kind)
	pair, ok := discounts[1].Magnitude.Pair()
	require.True(t, ok)
	assert.Equal(t, discount.BuyXGetY{BuyQuantity: 2, GetFreeQuantity: 1}, pair)
}

func TestCartCallsCarryCredentials(t *testing.T) {
	var patched map[string]interface{}
	var cleared bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token-1", r.Header.Get(types.HeaderAccessToken))
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"_id":"c1","customer_id":"u1","items":[{"product_id":"p1","price":10,"quantity":2,"stock":5}]}`))
		case http.MethodPatch:
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &patched))
		case http.MethodDelete:
			cleared = true
		}
	}))

	ctx := context.Background()
	cart, err := c.GetCart(ctx, shopper)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.True(t, decimal.NewFromInt(10).Equal(cart.Items[0].UnitPrice))

	require.NoError(t, c.UpdateCartQuantity(ctx, shopper, "p1", 3))
	assert.Equal(t, "p1", patched["product_id"])
	assert.Equal(t, float64(3), patched["quantity"])

	require.NoError(t, c.ClearCart(ctx, shopper))
	assert.True(t, cleared)
}

func TestWishlistCalls(t *testing.T) {
	var deleted []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token-1", r.Header.Get(types.HeaderAccessToken))
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/wishlist", r.URL.Path)
			_, _ = w.Write([]byte(`[{"_id":"p1","name":"Lamp","image":"lamp.png","price":19.5,"stock":2}]`))
		case http.MethodDelete:
			deleted = append(deleted, r.URL.Path)
		}
	}))

	ctx := context.Background()
	items, err := c.ListWishlist(ctx, shopper)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.True(t, decimal.RequireFromString("19.5").Equal(items[0].Price))

	require.NoError(t, c.RemoveWishlistItem(ctx, shopper, "p1"))
	require.NoError(t, c.ClearWishlist(ctx, shopper))
	assert.Equal(t, []string{"/items/p1", "/wishlist"}, deleted)
}

func TestCreateOrderSendsSubmission(t *testing.T) {
	var got map[string]interface{}
	var key string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/order", r.URL.Path)
		key = r.Header.Get(idempotency.HeaderIdempotencyKey)
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusCreated)
	}))

	err := c.CreateOrder(context.Background(), shopper, &order.Submission{
		Reference:       "SO-1",
		Items:           []checkout.LineItem{{ProductID: "p1", UnitPrice: decimal.NewFromInt(10), Quantity: 1, Stock: 1}},
		ShippingAddress: "1 Main St",
		PaymentMethod:   types.PaymentMethodPayOnDelivery,
		TotalAmount:     decimal.NewFromInt(30),
		IdempotencyKey:  "order_submission-abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "order_submission-abc", key)
	assert.NotContains(t, got, "IdempotencyKey")
	assert.Equal(t, "1 Main St", got["shippingAddress"])
	assert.Equal(t, string(types.PaymentMethodPayOnDelivery), got["paymentMethod"])
	assert.Contains(t, got, "items")
	assert.Contains(t, got, "totalAmount")
}

func TestUpdateDetailsBody(t *testing.T) {
	var got map[string][]interface{}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/update/detail", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
	}))

	update, err := account.NewDetailsUpdate(account.Details{Name: lo.ToPtr("Ada")}, time.Now())
	require.NoError(t, err)
	require.NoError(t, c.UpdateDetails(context.Background(), shopper, update))
	assert.Equal(t, []interface{}{"name"}, got["field"])
	assert.Equal(t, []interface{}{"Ada"}, got["value"])
}

func TestUpstreamStatusesMapToSentinels(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusNotFound, ierr.IsNotFound},
		{http.StatusUnauthorized, ierr.IsPermissionDenied},
		{http.StatusForbidden, ierr.IsPermissionDenied},
		{http.StatusBadRequest, ierr.IsValidation},
		{http.StatusInternalServerError, ierr.IsHTTPClient},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}))

			_, err := c.GetUser(context.Background(), shopper)
			require.Error(t, err)
			assert.True(t, tt.check(err))
		})
	}
}

func TestNotFoundIsNotAlsoAnUpstreamFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
	assert.False(t, ierr.IsHTTPClient(err))
	assert.Equal(t, http.StatusNotFound, ierr.HTTPStatusFromErr(err))
}

func TestRequestIDIsForwarded(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get(types.HeaderRequestID))
		_, _ = w.Write([]byte(`[]`))
	}))

	ctx := types.SetRequestID(context.Background(), "req-42")
	orders, err := c.ListOrders(ctx, shopper)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
