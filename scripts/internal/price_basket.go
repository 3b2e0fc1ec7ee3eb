package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/config"
	"github.com/openshop/storefront/internal/domain/checkout"
	"github.com/openshop/storefront/internal/logger"
)

// PriceBasket prices the basket in BASKET_FILE offline. The file has the same
// shape as the quote request body.
func PriceBasket() error {
	path := os.Getenv("BASKET_FILE")
	if path == "" {
		return fmt.Errorf("BASKET_FILE is required")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read basket file: %w", err)
	}

	var basket dto.QuoteRequest
	if err := json.Unmarshal(data, &basket); err != nil {
		return fmt.Errorf("failed to parse basket file: %w", err)
	}

	shippingFee := cfg.Checkout.ShippingFee
	if basket.ShippingFee != nil {
		shippingFee = *basket.ShippingFee
	}

	items := basket.LineItems()
	if selection, ok := basket.Selection(); ok {
		items = selection.Filter(items)
	}

	quote, err := checkout.BuildQuote(items, checkout.Discounts(basket.AppliedDiscounts), shippingFee)
	if err != nil {
		return err
	}

	for _, line := range quote.Lines {
		logger.L.Infow("line",
			"product_id", line.ProductID,
			"quantity", line.Quantity,
			"base", line.BaseAmount.String(),
			"total", line.Total.String(),
			"free_items", line.FreeItems)
	}
	logger.L.Infow("basket total",
		"lines", len(quote.Lines),
		"shipping_fee", shippingFee.String(),
		"total", quote.Total.String())

	return nil
}
