package main

import (
	"context"
	"time"

	_ "github.com/openshop/storefront/docs/swagger"
	"github.com/openshop/storefront/internal/api"
	v1 "github.com/openshop/storefront/internal/api/v1"
	"github.com/openshop/storefront/internal/cache"
	"github.com/openshop/storefront/internal/config"
	"github.com/openshop/storefront/internal/httpclient"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/sentry"
	"github.com/openshop/storefront/internal/service"
	"github.com/openshop/storefront/internal/storefront"
	"github.com/openshop/storefront/internal/types"
	"github.com/openshop/storefront/internal/validator"
	"go.uber.org/fx"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

// @title Storefront Checkout API
// @version 1.0
// @description Checkout pricing and shopper account API in front of the storefront backend
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey AccessToken
// @in header
// @name accessToken

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Cache
			cache.Initialize,

			// HTTP client
			httpclient.NewClientConfig,
			httpclient.NewDefaultClient,

			// Storefront backend
			storefront.NewClient,
		),
	)

	// Service layer
	opts = append(opts, fx.Provide(
		service.NewServiceParams,

		service.NewCheckoutService,
		service.NewCartService,
		service.NewProductService,
		service.NewOrderService,
		service.NewAccountService,
		service.NewWishlistService,
	))

	// API layer
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			// Request DTOs validate through the package level instance
			validator.NewValidator,
			sentry.RegisterHooks,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	checkoutService service.CheckoutService,
	cartService service.CartService,
	productService service.ProductService,
	orderService service.OrderService,
	accountService service.AccountService,
	wishlistService service.WishlistService,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(logger),
		Checkout: v1.NewCheckoutHandler(checkoutService, logger),
		Cart:     v1.NewCartHandler(cartService, logger),
		Product:  v1.NewProductHandler(productService, logger),
		Order:    v1.NewOrderHandler(orderService, logger),
		Account:  v1.NewAccountHandler(accountService, logger),
		Wishlist: v1.NewWishlistHandler(wishlistService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger, sentrySvc *sentry.Service) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(handlers, cfg, logger, sentrySvc)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	case types.ModeAWSLambdaAPI:
		startAWSLambdaAPI(r)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...",
				"address", cfg.Server.Address,
				"storefront", cfg.Storefront.BaseURL)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}

func startAWSLambdaAPI(r *gin.Engine) {
	ginLambda := ginadapter.New(r)
	lambda.Start(ginLambda.ProxyWithContext)
}
