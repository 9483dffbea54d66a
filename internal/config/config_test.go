package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.Checkout.ShippingFee.Equal(decimal.NewFromInt(30)) {
		t.Errorf("ShippingFee = %s, want 30", cfg.Checkout.ShippingFee)
	}
	if cfg.Catalog.SeedPath != "" {
		t.Errorf("SeedPath = %q, want empty", cfg.Catalog.SeedPath)
	}
	if cfg.Catalog.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", cfg.Catalog.PageSize)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CHECKOUT_SHIPPING_FEE", "12.5")
	t.Setenv("CATALOG_SEED_PATH", "/tmp/seed.json")
	t.Setenv("CATALOG_PAGE_SIZE", "50")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.Checkout.ShippingFee.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("ShippingFee = %s, want 12.5", cfg.Checkout.ShippingFee)
	}
	if cfg.Catalog.SeedPath != "/tmp/seed.json" {
		t.Errorf("SeedPath = %q", cfg.Catalog.SeedPath)
	}
	if cfg.Catalog.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", cfg.Catalog.PageSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	t.Setenv("CHECKOUT_SHIPPING_FEE", "-1")
	if _, err := Load(); err == nil {
		t.Error("Expected error for negative shipping fee")
	}

	t.Setenv("CHECKOUT_SHIPPING_FEE", "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Unparseable values fall back to the default.
	if !cfg.Checkout.ShippingFee.Equal(decimal.NewFromInt(30)) {
		t.Errorf("ShippingFee = %s, want default 30", cfg.Checkout.ShippingFee)
	}
}
