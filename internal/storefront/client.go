package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openshop/storefront/internal/cache"
	"github.com/openshop/storefront/internal/config"
	"github.com/openshop/storefront/internal/domain/account"
	"github.com/openshop/storefront/internal/domain/checkout"
	"github.com/openshop/storefront/internal/domain/discount"
	"github.com/openshop/storefront/internal/domain/order"
	"github.com/openshop/storefront/internal/domain/product"
	"github.com/openshop/storefront/internal/domain/wishlist"
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/httpclient"
	"github.com/openshop/storefront/internal/idempotency"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/sentry"
	"github.com/openshop/storefront/internal/types"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

// Client is the storefront backend as seen by this service. Calls that act on
// behalf of a shopper take their credentials explicitly.
type Client interface {
	GetProduct(ctx context.Context, productID string) (*product.Product, error)
	ListDiscountsByProduct(ctx context.Context, productID string) ([]*discount.Discount, error)

	GetCart(ctx context.Context, creds types.Credentials) (*checkout.Cart, error)
	UpdateCartQuantity(ctx context.Context, creds types.Credentials, productID string, quantity int) error
	ClearCart(ctx context.Context, creds types.Credentials) error

	ListWishlist(ctx context.Context, creds types.Credentials) ([]wishlist.Item, error)
	RemoveWishlistItem(ctx context.Context, creds types.Credentials, productID string) error
	ClearWishlist(ctx context.Context, creds types.Credentials) error

	CreateOrder(ctx context.Context, creds types.Credentials, submission *order.Submission) error
	ListOrders(ctx context.Context, creds types.Credentials) ([]*order.Order, error)

	GetUser(ctx context.Context, creds types.Credentials) (*account.User, error)
	VerifyAccount(ctx context.Context, creds types.Credentials, email, password string) error
	UpdateEmail(ctx context.Context, creds types.Credentials, newEmail string) error
	UpdatePassword(ctx context.Context, creds types.Credentials, newPassword string) error
	ForgetPassword(ctx context.Context, creds types.Credentials, email string) error
	UpdateDetails(ctx context.Context, creds types.Credentials, update *account.DetailsUpdate) error
}

type client struct {
	httpClient httpclient.Client
	baseURL    string
	limiter    *rate.Limiter
	cache      cache.Cache
	cacheTTL   time.Duration
	sentry     *sentry.Service
	logger     *logger.Logger
}

// NewClient creates a storefront backend client
func NewClient(
	cfg *config.Configuration,
	httpClient httpclient.Client,
	c cache.Cache,
	sentry *sentry.Service,
	logger *logger.Logger,
) Client {
	limit := rate.Inf
	if cfg.Storefront.RateLimit > 0 {
		limit = rate.Limit(cfg.Storefront.RateLimit)
	}
	burst := cfg.Storefront.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.Storefront.BaseURL, "/"),
		limiter:    rate.NewLimiter(limit, burst),
		cache:      c,
		cacheTTL:   cfg.Cache.TTL,
		sentry:     sentry,
		logger:     logger,
	}
}

func (c *client) GetProduct(ctx context.Context, productID string) (*product.Product, error) {
	key := cache.ProductKey(productID)
	if cached, ok := c.cache.Get(ctx, key); ok {
		if p, ok := cached.(*product.Product); ok {
			return p, nil
		}
	}

	var p product.Product
	if err := c.makeRequest(ctx, http.MethodGet, "/product/"+url.PathEscape(productID), types.Credentials{}, nil, &p); err != nil {
		return nil, err
	}

	c.cache.Set(ctx, key, &p, c.cacheTTL)
	return &p, nil
}

func (c *client) ListDiscountsByProduct(ctx context.Context, productID string) ([]*discount.Discount, error) {
	key := cache.ProductDiscountsKey(productID)
	if cached, ok := c.cache.Get(ctx, key); ok {
		if discounts, ok := cached.([]*discount.Discount); ok {
			return discounts, nil
		}
	}

	var discounts []*discount.Discount
	if err := c.makeRequest(ctx, http.MethodGet, "/discount/by-product/"+url.PathEscape(productID), types.Credentials{}, nil, &discounts); err != nil {
		return nil, err
	}

	c.cache.Set(ctx, key, discounts, c.cacheTTL)
	return discounts, nil
}

func (c *client) GetCart(ctx context.Context, creds types.Credentials) (*checkout.Cart, error) {
	var cart checkout.Cart
	if err := c.makeRequest(ctx, http.MethodGet, "/cart", creds, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *client) UpdateCartQuantity(ctx context.Context, creds types.Credentials, productID string, quantity int) error {
	body := map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	}
	return c.makeRequest(ctx, http.MethodPatch, "/cart", creds, body, nil)
}

func (c *client) ClearCart(ctx context.Context, creds types.Credentials) error {
	return c.makeRequest(ctx, http.MethodDelete, "/cart", creds, nil, nil)
}

func (c *client) ListWishlist(ctx context.Context, creds types.Credentials) ([]wishlist.Item, error) {
	var items []wishlist.Item
	if err := c.makeRequest(ctx, http.MethodGet, "/wishlist", creds, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveWishlistItem uses the backend's bare /items route, which only serves wishlist entries
func (c *client) RemoveWishlistItem(ctx context.Context, creds types.Credentials, productID string) error {
	return c.makeRequest(ctx, http.MethodDelete, "/items/"+url.PathEscape(productID), creds, nil, nil)
}

func (c *client) ClearWishlist(ctx context.Context, creds types.Credentials) error {
	return c.makeRequest(ctx, http.MethodDelete, "/wishlist", creds, nil, nil)
}

func (c *client) CreateOrder(ctx context.Context, creds types.Credentials, submission *order.Submission) error {
	var headers map[string]string
	if submission.IdempotencyKey != "" {
		headers = map[string]string{idempotency.HeaderIdempotencyKey: submission.IdempotencyKey}
	}
	return c.makeRequestWithHeaders(ctx, http.MethodPost, "/order", creds, headers, submission, nil)
}

func (c *client) ListOrders(ctx context.Context, creds types.Credentials) ([]*order.Order, error) {
	var orders []*order.Order
	if err := c.makeRequest(ctx, http.MethodGet, "/order", creds, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *client) GetUser(ctx context.Context, creds types.Credentials) (*account.User, error) {
	var user account.User
	if err := c.makeRequest(ctx, http.MethodGet, "/user/user-data", creds, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *client) VerifyAccount(ctx context.Context, creds types.Credentials, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.makeRequest(ctx, http.MethodPost, "/user/verify", creds, body, nil)
}

func (c *client) UpdateEmail(ctx context.Context, creds types.Credentials, newEmail string) error {
	return c.makeRequest(ctx, http.MethodPost, "/user/update-email", creds, map[string]string{"newEmail": newEmail}, nil)
}

func (c *client) UpdatePassword(ctx context.Context, creds types.Credentials, newPassword string) error {
	return c.makeRequest(ctx, http.MethodPost, "/user/update-password", creds, map[string]string{"newPassword": newPassword}, nil)
}

func (c *client) ForgetPassword(ctx context.Context, creds types.Credentials, email string) error {
	return c.makeRequest(ctx, http.MethodPost, "/user/forget-password", creds, map[string]string{"email": email}, nil)
}

func (c *client) UpdateDetails(ctx context.Context, creds types.Credentials, update *account.DetailsUpdate) error {
	return c.makeRequest(ctx, http.MethodPost, "/user/update/detail", creds, update, nil)
}

// makeRequest sends one JSON request to the backend and decodes the response into out when given
func (c *client) makeRequest(ctx context.Context, method, endpoint string, creds types.Credentials, body interface{}, out interface{}) error {
	return c.makeRequestWithHeaders(ctx, method, endpoint, creds, nil, body, out)
}

func (c *client) makeRequestWithHeaders(ctx context.Context, method, endpoint string, creds types.Credentials, extra map[string]string, body interface{}, out interface{}) (err error) {
	span, ctx := c.sentry.StartStorefrontSpan(ctx, method, endpoint)
	defer func() { sentry.FinishSpan(span, err) }()

	if err := c.limiter.Wait(ctx); err != nil {
		return ierr.WithError(err).
			WithHint("Request cancelled while waiting for the storefront rate limit").
			Mark(ierr.ErrHTTPClient)
	}

	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return ierr.WithError(err).
				WithHint("Invalid request data").
				Mark(ierr.ErrSystem)
		}
	}

	headers := lo.Assign(creds.Headers(), extra)
	if requestID := types.GetRequestID(ctx); requestID != "" {
		headers[types.HeaderRequestID] = requestID
	}

	resp, err := c.httpClient.Send(ctx, &httpclient.Request{
		Method:  method,
		URL:     c.baseURL + endpoint,
		Headers: headers,
		Body:    jsonBody,
	})
	if err != nil {
		c.logger.Errorw("storefront request failed",
			"error", err,
			"method", method,
			"endpoint", endpoint)
		return translateError(err, method, endpoint)
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		c.logger.Errorw("failed to unmarshal storefront response",
			"error", err,
			"endpoint", endpoint,
			"body", string(resp.Body))
		return ierr.WithError(err).
			WithHint("Invalid response from the storefront backend").
			Mark(ierr.ErrHTTPClient)
	}

	return nil
}

// translateError maps upstream status codes onto our sentinels. Upstream
// responses are rebuilt rather than wrapped so only one sentinel matches.
func translateError(err error, method, endpoint string) error {
	httpErr, ok := httpclient.IsHTTPError(err)
	if !ok {
		return ierr.WithError(err).
			WithHint("Unable to reach the storefront backend").
			WithReportableDetails(map[string]interface{}{
				"method":   method,
				"endpoint": endpoint,
			}).
			Mark(ierr.ErrHTTPClient)
	}

	details := map[string]interface{}{
		"method":      method,
		"endpoint":    endpoint,
		"status_code": httpErr.StatusCode,
	}
	msg := fmt.Sprintf("storefront %s %s returned %d", method, endpoint, httpErr.StatusCode)

	switch httpErr.StatusCode {
	case http.StatusNotFound:
		return ierr.NewError(msg).
			WithHint("The requested resource does not exist").
			WithReportableDetails(details).
			Mark(ierr.ErrNotFound)
	case http.StatusUnauthorized, http.StatusForbidden:
		return ierr.NewError(msg).
			WithHint("Please sign in again").
			WithReportableDetails(details).
			Mark(ierr.ErrPermissionDenied)
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		return ierr.NewError(msg).
			WithHint(upstreamMessage(httpErr.Response)).
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	default:
		return ierr.NewError(msg).
			WithHint("The storefront backend is unavailable").
			WithReportableDetails(details).
			Mark(ierr.ErrHTTPClient)
	}
}

// upstreamMessage pulls a human readable message out of an error body, if any
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return "The storefront backend rejected the request"
}
