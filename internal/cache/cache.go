package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Cache holds storefront reads that every shopper sees the same way, product
// documents and the discounts offered on them. Per-shopper state such as carts
// and wishlists is never cached.
type Cache interface {
	// Get returns the cached value and whether the key was present
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set stores a value; an expiration of 0 uses the configured TTL
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)

	Delete(ctx context.Context, key string)

	// DeleteByPrefix drops every entry of one kind, e.g. all product documents
	DeleteByPrefix(ctx context.Context, prefix string)

	Flush(ctx context.Context)
}

// Key prefixes carry a version so a change in the cached shape never reads stale entries
const (
	PrefixProduct          = "product:v1:"
	PrefixProductDiscounts = "product_discounts:v1:"
)

// ProductKey is the key for one product document
func ProductKey(productID string) string {
	return GenerateKey(PrefixProduct, productID)
}

// ProductDiscountsKey is the key for the discounts offered on one product
func ProductDiscountsKey(productID string) string {
	return GenerateKey(PrefixProductDiscounts, productID)
}

// GenerateKey joins the params onto the prefix with colons
func GenerateKey(prefix string, params ...interface{}) string {
	parts := make([]string, len(params)+1)
	parts[0] = prefix

	for i, param := range params {
		parts[i+1] = fmt.Sprintf("%v", param)
	}

	return strings.Join(parts, ":")
}
