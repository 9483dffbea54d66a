package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/safar/go-checkout/internal/config"
	"github.com/safar/go-checkout/internal/models"
	"github.com/safar/go-checkout/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	catalog := store.NewCatalog()
	if err := seedCatalog(catalog, cfg.Catalog.SeedPath); err != nil {
		logger.Fatal("seed catalog", zap.Error(err))
	}

	listing := catalog.List(1, cfg.Catalog.PageSize)
	logger.Info("catalog ready", zap.Int64("products", listing.Total))

	ledger := store.NewLedger()
	checkout := store.NewCheckoutService(catalog, ledger, cfg.Checkout.ShippingFee, os.Stdout, logger)

	customer := &models.Customer{Name: "Mariam", Balance: decimal.NewFromInt(1000)}

	cart := store.NewCart()
	lines := []struct {
		sku string
		qty int
	}{
		{"CHEESE-001", 2},
		{"BISCUITS-001", 1},
		{"SCRATCH-001", 1},
	}
	for _, line := range lines {
		product, err := catalog.Get(line.sku)
		if err != nil {
			logger.Fatal("load product", zap.String("sku", line.sku), zap.Error(err))
		}
		if err := cart.Add(product, line.qty); err != nil {
			logger.Fatal("fill cart", zap.Error(err))
		}
	}

	order, err := checkout.Checkout(customer, cart)
	if err != nil {
		// Domain failures are reported, not crashed on.
		logger.Error("checkout failed", zap.Error(err))
		return
	}

	logger.Info("order recorded",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("balance", customer.Balance.String()))
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func seedCatalog(catalog *store.Catalog, seedPath string) error {
	products := store.DefaultSeed(time.Now())
	if seedPath != "" {
		loaded, err := store.LoadSeed(seedPath)
		if err != nil {
			return err
		}
		products = loaded
	}

	for _, p := range products {
		if err := catalog.Add(p); err != nil {
			return err
		}
	}

	return nil
}
