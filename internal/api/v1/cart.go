package v1

import (
	"net/http"

	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/service"
	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService service.CartService
	log         *logger.Logger
}

func NewCartHandler(cartService service.CartService, log *logger.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         log,
	}
}

// @Summary Get cart
// @Description Returns the shopper's cart with its subtotal and the subtotal of the selected lines
// @Tags Cart
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Param selected query []string false "Selected product IDs" collectionFormat(multi)
// @Success 200 {object} dto.CartResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	resp, err := h.cartService.GetCart(c.Request.Context(), credentialsFrom(c), c.QueryArray("selected"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update cart quantity
// @Description Sets the quantity of one cart line; the quantity must stay within stock
// @Tags Cart
// @Accept json
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Param product_id path string true "Product ID"
// @Param request body dto.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /cart/items/{product_id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.cartService.UpdateQuantity(c.Request.Context(), credentialsFrom(c), c.Param("product_id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Clear cart
// @Description Removes every line from the shopper's cart
// @Tags Cart
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Success 200 {object} dto.CartResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	resp, err := h.cartService.ClearCart(c.Request.Context(), credentialsFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Start checkout
// @Description Builds a checkout set from the selected cart lines
// @Tags Cart
// @Accept json
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Param request body dto.StartCheckoutRequest true "Selected lines"
// @Success 200 {object} dto.StartCheckoutResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /cart/checkout [post]
func (h *CartHandler) StartCheckout(c *gin.Context) {
	var req dto.StartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.cartService.StartCheckout(c.Request.Context(), credentialsFrom(c), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
