package store

import (
	"fmt"

	"github.com/safar/go-checkout/internal/models"
)

// Cart is an ordered list of items staged for checkout. Insertion order
// is preserved; adding the same product twice yields two entries.
type Cart struct {
	items []models.CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add stages quantity units of product. The quantity is checked against
// the product's stock as recorded right now; checkout re-validates with
// demand aggregated across entries, which is the authoritative check.
func (c *Cart) Add(product *models.Product, quantity int) error {
	if product == nil {
		return ErrInvalidProduct
	}
	if quantity <= 0 {
		return fmt.Errorf("add %s: %w", product.Name, ErrInvalidQuantity)
	}
	if quantity > product.StockQuantity {
		return fmt.Errorf("add %s: %w", product.Name, ErrInsufficientStock)
	}

	c.items = append(c.items, models.CartItem{Product: product, Quantity: quantity})

	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns the staged items in insertion order.
func (c *Cart) Items() []models.CartItem {
	return c.items
}

// demandBySKU totals the requested quantity per product, so separate
// entries for the same product cannot jointly slip past a per-entry
// stock check.
func (c *Cart) demandBySKU() map[string]int {
	demand := make(map[string]int, len(c.items))
	for _, item := range c.items {
		demand[item.Product.SKU] += item.Quantity
	}
	return demand
}
