package cache

import (
	"github.com/openshop/storefront/internal/config"
	"github.com/openshop/storefront/internal/logger"
)

// Initialize builds the process cache
func Initialize(cfg *config.Configuration, log *logger.Logger) Cache {
	log.Infow("initializing cache system",
		"enabled", cfg.Cache.Enabled,
		"ttl", cfg.Cache.TTL,
	)

	return NewInMemoryCache(cfg)
}
