package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/openshop/storefront/internal/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Checkout   CheckoutConfig   `validate:"required"`
	Storefront StorefrontConfig `validate:"required"`
	Cache      CacheConfig
	Sentry     SentryConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// CheckoutConfig holds the pricing parameters applied to every checkout line
type CheckoutConfig struct {
	ShippingFee decimal.Decimal `mapstructure:"shipping_fee"`
}

// StorefrontConfig points at the remote e-commerce backend
type StorefrontConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"required"`
	RetryMax  int           `mapstructure:"retry_max" validate:"gte=0"`
	RateLimit float64       `mapstructure:"rate_limit" validate:"gte=0"`
	RateBurst int           `mapstructure:"rate_burst" validate:"gte=0"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// DefaultShippingFee is the flat per-line shipping charge the storefront has always used
var DefaultShippingFee = decimal.NewFromInt(20)

func NewConfig() (*Configuration, error) {
	// .env is optional and only fills variables that are not already set
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/storefront")

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config, viper.DecodeHook(decodeHooks())); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":8081")
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("checkout.shipping_fee", DefaultShippingFee.String())
	v.SetDefault("storefront.base_url", "http://localhost:8080")
	v.SetDefault("storefront.timeout", 10*time.Second)
	v.SetDefault("storefront.retry_max", 2)
	v.SetDefault("storefront.rate_limit", 50)
	v.SetDefault("storefront.rate_burst", 10)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", time.Minute)
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.sample_rate", 1.0)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if err := c.Deployment.Mode.Validate(); err != nil {
		return err
	}
	if c.Checkout.ShippingFee.IsNegative() {
		return fmt.Errorf("checkout.shipping_fee must not be negative, got %s", c.Checkout.ShippingFee)
	}
	return nil
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or tests without a config file
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8081"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Checkout:   CheckoutConfig{ShippingFee: DefaultShippingFee},
		Storefront: StorefrontConfig{
			BaseURL:   "http://localhost:8080",
			Timeout:   10 * time.Second,
			RetryMax:  2,
			RateLimit: 50,
			RateBurst: 10,
		},
		Cache: CacheConfig{Enabled: true, TTL: time.Minute},
	}
}
