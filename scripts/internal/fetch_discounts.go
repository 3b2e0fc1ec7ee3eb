package internal

import (
	"context"
	"fmt"
	"os"

	"github.com/openshop/storefront/internal/cache"
	"github.com/openshop/storefront/internal/config"
	"github.com/openshop/storefront/internal/httpclient"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/sentry"
	"github.com/openshop/storefront/internal/storefront"
)

// FetchDiscounts lists the offers the storefront backend has for PRODUCT_ID
func FetchDiscounts() error {
	productID := os.Getenv("PRODUCT_ID")
	if productID == "" {
		return fmt.Errorf("PRODUCT_ID is required")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := storefront.NewClient(
		cfg,
		httpclient.NewDefaultClient(httpclient.NewClientConfig(cfg), logger.L),
		cache.NewInMemoryCache(cfg),
		sentry.NewSentryService(cfg, logger.L),
		logger.L,
	)

	discounts, err := client.ListDiscountsByProduct(context.Background(), productID)
	if err != nil {
		return err
	}

	logger.L.Infow("fetched discounts", "product_id", productID, "count", len(discounts))
	for _, d := range discounts {
		status := "ok"
		if err := d.Validate(); err != nil {
			status = err.Error()
		}
		logger.L.Infow("discount",
			"code", d.Code,
			"kind", d.Kind,
			"label", d.Label(),
			"status", status)
	}

	return nil
}
