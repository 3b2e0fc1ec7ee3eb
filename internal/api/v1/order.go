package v1

import (
	"net/http"

	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/service"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService service.OrderService
	log          *logger.Logger
}

func NewOrderHandler(orderService service.OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// @Summary List orders
// @Description Lists the shopper's orders, optionally narrowed to one stage
// @Tags Orders
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Param stage query string false "Order stage" Enums(pending, in_delivering, successful, refused)
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.orderService.ListOrders(c.Request.Context(), credentialsFrom(c), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
