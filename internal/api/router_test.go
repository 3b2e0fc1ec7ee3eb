package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openshop/storefront/internal/api/dto"
	v1 "github.com/openshop/storefront/internal/api/v1"
	"github.com/openshop/storefront/internal/config"
	"github.com/openshop/storefront/internal/domain/account"
	"github.com/openshop/storefront/internal/domain/product"
	"github.com/openshop/storefront/internal/domain/wishlist"
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/sentry"
	"github.com/openshop/storefront/internal/service"
	"github.com/openshop/storefront/internal/testutil"
	"github.com/openshop/storefront/internal/types"
	"github.com/openshop/storefront/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const shopperToken = "router-shopper"

type RouterSuite struct {
	suite.Suite
	store  *testutil.InMemoryStorefront
	router *gin.Engine
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	validator.NewValidator()
}

func (s *RouterSuite) SetupTest() {
	cfg := config.GetDefaultConfig()
	log := logger.NewNopLogger()
	s.store = testutil.NewInMemoryStorefront()
	s.store.AddUser(shopperToken, &account.User{UserID: "u1", Email: "ana@example.com"}, "secret")

	params := service.NewServiceParams(log, cfg, s.store)
	s.router = NewRouter(Handlers{
		Health:   v1.NewHealthHandler(log),
		Checkout: v1.NewCheckoutHandler(service.NewCheckoutService(params), log),
		Cart:     v1.NewCartHandler(service.NewCartService(params), log),
		Product:  v1.NewProductHandler(service.NewProductService(params), log),
		Order:    v1.NewOrderHandler(service.NewOrderService(params), log),
		Account:  v1.NewAccountHandler(service.NewAccountService(params), log),
		Wishlist: v1.NewWishlistHandler(service.NewWishlistService(params), log),
	}, cfg, log, sentry.NewSentryService(cfg, log))
}

func (s *RouterSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(types.HeaderAccessToken, token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func quoteBody() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"product_id": "p1", "price": "50", "quantity": 2, "stock": 5},
		},
		"applied_discounts": map[string]any{
			"p1": map[string]any{"_id": "d1", "code": "TEN", "type": "percentage", "value": 10},
		},
	}
}

func (s *RouterSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func (s *RouterSuite) TestQuote() {
	w := s.do(http.MethodPost, "/v1/checkout/quote", "", quoteBody())
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.QuoteResponse
	s.decode(w, &resp)
	s.True(decimal.NewFromInt(108).Equal(resp.Total), resp.Total.String())
	s.Require().Len(resp.Lines, 1)
	s.True(decimal.NewFromInt(120).Equal(resp.Lines[0].BaseAmount))
}

func (s *RouterSuite) TestQuoteRejectsQuantityAboveStock() {
	body := quoteBody()
	body["items"] = []map[string]any{
		{"product_id": "p1", "price": "50", "quantity": 9, "stock": 5},
	}

	w := s.do(http.MethodPost, "/v1/checkout/quote", "", body)
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	var resp ierr.ErrorResponse
	s.decode(w, &resp)
	s.False(resp.Success)
	s.NotEmpty(resp.Error.Display)
}

func (s *RouterSuite) TestQuoteRejectsMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/checkout/quote", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestPlaceOrder() {
	body := quoteBody()
	body["shipping_address"] = "12 Harbour Road"
	body["payment_method"] = string(types.PaymentMethodPayOnDelivery)

	w := s.do(http.MethodPost, "/v1/checkout/orders", shopperToken, body)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.PlaceOrderResponse
	s.decode(w, &resp)
	s.True(decimal.NewFromInt(108).Equal(resp.TotalAmount))

	submissions := s.store.Submissions()
	s.Require().Len(submissions, 1)
	s.Equal(resp.Reference, submissions[0].Reference)

	w = s.do(http.MethodGet, "/v1/orders?stage=pending", shopperToken, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var orders dto.ListOrdersResponse
	s.decode(w, &orders)
	s.Equal(1, orders.Total)
}

func (s *RouterSuite) TestPlaceOrderNeedsAccessToken() {
	body := quoteBody()
	body["shipping_address"] = "12 Harbour Road"
	body["payment_method"] = string(types.PaymentMethodPayNow)

	w := s.do(http.MethodPost, "/v1/checkout/orders", "", body)
	s.Equal(http.StatusForbidden, w.Code)
	s.Empty(s.store.Submissions())
}

func (s *RouterSuite) TestListOrdersRejectsUnknownStage() {
	w := s.do(http.MethodGet, "/v1/orders?stage=lost", shopperToken, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestCartNeedsAccessToken() {
	w := s.do(http.MethodGet, "/v1/cart", "", nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, "/v1/cart", shopperToken, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestWishlistRoutes() {
	s.store.AddWishlistItems(shopperToken,
		wishlist.Item{ProductID: "lamp", Price: decimal.NewFromInt(20), Stock: 1},
		wishlist.Item{ProductID: "rug", Price: decimal.NewFromInt(80), Stock: 2},
	)

	w := s.do(http.MethodGet, "/v1/wishlist", "", nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodDelete, "/v1/wishlist/items/lamp", shopperToken, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.WishlistResponse
	s.decode(w, &resp)
	s.Equal(1, resp.Total)
	s.Equal("rug", resp.Items[0].ProductID)

	w = s.do(http.MethodDelete, "/v1/wishlist/items/lamp", shopperToken, nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, "/v1/wishlist", shopperToken, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/v1/wishlist", shopperToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	resp = dto.WishlistResponse{}
	s.decode(w, &resp)
	s.Zero(resp.Total)
}

func (s *RouterSuite) TestProductLookup() {
	price := decimal.NewFromInt(30)
	stock := 4
	s.store.AddProduct(&product.Product{ID: "p9", Name: "Mug", Price: &price, Stock: &stock})

	w := s.do(http.MethodGet, "/v1/products/p9", "", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/v1/products/missing", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestDiscountCandidatesNeedProductIDs() {
	w := s.do(http.MethodGet, "/v1/checkout/discounts", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/v1/checkout/discounts?product_id=p1&product_id=p2", "", nil)
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}
