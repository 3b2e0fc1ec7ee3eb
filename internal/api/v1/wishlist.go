package v1

import (
	"net/http"

	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/service"
	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
	log             *logger.Logger
}

func NewWishlistHandler(wishlistService service.WishlistService, log *logger.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		log:             log,
	}
}

// @Summary Get wishlist
// @Description Returns the products the shopper saved for later
// @Tags Wishlist
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Success 200 {object} dto.WishlistResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /wishlist [get]
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	resp, err := h.wishlistService.GetWishlist(c.Request.Context(), credentialsFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Remove wishlist item
// @Description Drops one saved product and returns the remaining wishlist
// @Tags Wishlist
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Param product_id path string true "Product ID"
// @Success 200 {object} dto.WishlistResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /wishlist/items/{product_id} [delete]
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	resp, err := h.wishlistService.RemoveItem(c.Request.Context(), credentialsFrom(c), c.Param("product_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Clear wishlist
// @Description Removes every saved product
// @Tags Wishlist
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /wishlist [delete]
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	resp, err := h.wishlistService.ClearWishlist(c.Request.Context(), credentialsFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
