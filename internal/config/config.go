package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Checkout CheckoutConfig
	Catalog  CatalogConfig
	Logging  LoggingConfig
}

type CheckoutConfig struct {
	ShippingFee decimal.Decimal
}

type CatalogConfig struct {
	SeedPath string
	PageSize int
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Checkout: CheckoutConfig{
			ShippingFee: getEnvDecimal("CHECKOUT_SHIPPING_FEE", decimal.NewFromInt(30)),
		},
		Catalog: CatalogConfig{
			SeedPath: getEnv("CATALOG_SEED_PATH", ""),
			PageSize: getEnvInt("CATALOG_PAGE_SIZE", 20),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if cfg.Checkout.ShippingFee.IsNegative() {
		return nil, fmt.Errorf("CHECKOUT_SHIPPING_FEE must not be negative, got %s", cfg.Checkout.ShippingFee)
	}
	if cfg.Catalog.PageSize < 1 {
		return nil, fmt.Errorf("CATALOG_PAGE_SIZE must be positive, got %d", cfg.Catalog.PageSize)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if dec, err := decimal.NewFromString(value); err == nil {
			return dec
		}
		fmt.Printf("Warning: invalid decimal for %s, using default\n", key)
	}
	return defaultValue
}
