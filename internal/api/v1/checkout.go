package v1

import (
	"net/http"

	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/service"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	log             *logger.Logger
}

func NewCheckoutHandler(checkoutService service.CheckoutService, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		log:             log,
	}
}

// @Summary Price a checkout set
// @Description Computes every line total and the grand total for the given items and applied discounts
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Checkout set"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /checkout/quote [post]
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.checkoutService.Quote(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List discount candidates
// @Description Lists the discounts the storefront offers for each product
// @Tags Checkout
// @Produce json
// @Param product_id query []string true "Product IDs" collectionFormat(multi)
// @Success 200 {object} dto.ListDiscountCandidatesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /checkout/discounts [get]
func (h *CheckoutHandler) ListDiscountCandidates(c *gin.Context) {
	var req dto.ListDiscountCandidatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.checkoutService.ListDiscountCandidates(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Place an order
// @Description Prices the checkout set and submits it to the storefront as a new order
// @Tags Checkout
// @Accept json
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Param request body dto.PlaceOrderRequest true "Order"
// @Success 201 {object} dto.PlaceOrderResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /checkout/orders [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.checkoutService.PlaceOrder(c.Request.Context(), credentialsFrom(c), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
