package api

import (
	v1 "github.com/openshop/storefront/internal/api/v1"
	"github.com/openshop/storefront/internal/config"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/rest/middleware"
	"github.com/openshop/storefront/internal/sentry"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Checkout *v1.CheckoutHandler
	Cart     *v1.CartHandler
	Product  *v1.ProductHandler
	Order    *v1.OrderHandler
	Account  *v1.AccountHandler
	Wishlist *v1.WishlistHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger, sentrySvc *sentry.Service) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.SentryScopeMiddleware,
		middleware.ErrorHandler(logger, sentrySvc),
	)

	router.GET("/health", handlers.Health.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	checkout := router.Group("/checkout")
	{
		checkout.POST("/quote", handlers.Checkout.Quote)
		checkout.GET("/discounts", handlers.Checkout.ListDiscountCandidates)
		checkout.POST("/orders", handlers.Checkout.PlaceOrder)
	}

	cart := router.Group("/cart")
	{
		cart.GET("", handlers.Cart.GetCart)
		cart.DELETE("", handlers.Cart.ClearCart)
		cart.PATCH("/items/:product_id", handlers.Cart.UpdateQuantity)
		cart.POST("/checkout", handlers.Cart.StartCheckout)
	}

	products := router.Group("/products")
	{
		products.GET("/:id", handlers.Product.GetProduct)
	}

	orders := router.Group("/orders")
	{
		orders.GET("", handlers.Order.ListOrders)
	}

	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("", handlers.Wishlist.GetWishlist)
		wishlist.DELETE("", handlers.Wishlist.ClearWishlist)
		wishlist.DELETE("/items/:product_id", handlers.Wishlist.RemoveItem)
	}

	account := router.Group("/account")
	{
		account.GET("", handlers.Account.GetAccount)
		account.POST("/verify", handlers.Account.Verify)
		account.POST("/email", handlers.Account.ChangeEmail)
		account.POST("/password", handlers.Account.ChangePassword)
		account.POST("/forget-password", handlers.Account.SendPasswordReset)
		account.POST("/details", handlers.Account.UpdateDetails)
	}
}
