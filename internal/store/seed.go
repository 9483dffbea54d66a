package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/safar/go-checkout/internal/models"
)

type seedProduct struct {
	SKU       string           `json:"sku"`
	Name      string           `json:"name"`
	Price     decimal.Decimal  `json:"price"`
	Stock     int              `json:"stock"`
	WeightKg  *decimal.Decimal `json:"weight_kg,omitempty"`
	ExpiresAt *time.Time       `json:"expires_at,omitempty"`
}

// LoadSeed reads a JSON product list from path.
func LoadSeed(path string) ([]*models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []seedProduct
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	products := make([]*models.Product, 0, len(seeds))
	for _, s := range seeds {
		products = append(products, &models.Product{
			SKU:           s.SKU,
			Name:          s.Name,
			Price:         s.Price,
			StockQuantity: s.Stock,
			Weight:        s.WeightKg,
			ExpiresAt:     s.ExpiresAt,
		})
	}

	return products, nil
}

// DefaultSeed returns the demo catalog used when no seed file is
// configured. Expiry dates are relative to now.
func DefaultSeed(now time.Time) []*models.Product {
	cheeseWeight := decimal.RequireFromString("0.2")
	tvWeight := decimal.NewFromInt(5)
	cheeseExpiry := now.AddDate(0, 0, 2)
	biscuitsExpiry := now.AddDate(0, 0, 1)

	return []*models.Product{
		{SKU: "CHEESE-001", Name: "Cheese", Price: decimal.NewFromInt(100), StockQuantity: 5, Weight: &cheeseWeight, ExpiresAt: &cheeseExpiry},
		{SKU: "BISCUITS-001", Name: "Biscuits", Price: decimal.NewFromInt(150), StockQuantity: 2, ExpiresAt: &biscuitsExpiry},
		{SKU: "TV-001", Name: "TV", Price: decimal.NewFromInt(3000), StockQuantity: 3, Weight: &tvWeight},
		{SKU: "SCRATCH-001", Name: "Scratch Card", Price: decimal.NewFromInt(50), StockQuantity: 10},
	}
}
