package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/safar/go-checkout/internal/models"
)

// Catalog holds the product inventory for one process run. Lookup is by
// SKU; listing preserves insertion order.
type Catalog struct {
	mu       sync.RWMutex
	order    []string
	products map[string]*models.Product
	now      func() time.Time
}

func NewCatalog() *Catalog {
	return &Catalog{
		products: make(map[string]*models.Product),
		now:      time.Now,
	}
}

func (c *Catalog) Add(p *models.Product) error {
	if p == nil {
		return ErrInvalidProduct
	}
	if p.SKU == "" || p.Name == "" {
		return fmt.Errorf("%w: sku and name are required", ErrInvalidProduct)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: negative price for %s", ErrInvalidProduct, p.SKU)
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("%w: negative stock for %s", ErrInvalidProduct, p.SKU)
	}
	if p.Weight != nil && p.Weight.IsNegative() {
		return fmt.Errorf("%w: negative weight for %s", ErrInvalidProduct, p.SKU)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[p.SKU]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSKU, p.SKU)
	}

	now := c.now()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Version = 1

	c.products[p.SKU] = p
	c.order = append(c.order, p.SKU)

	return nil
}

func (c *Catalog) Get(sku string) (*models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products[sku]
	if !ok {
		return nil, ErrProductNotFound
	}

	return product, nil
}

// DecrementStock subtracts quantity from a product's stock. Stock never
// goes negative; the caller is expected to have validated demand first,
// so hitting the guard here is an invariant failure.
func (c *Catalog) DecrementStock(sku string, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	product, ok := c.products[sku]
	if !ok {
		return ErrProductNotFound
	}

	if product.StockQuantity < quantity {
		return fmt.Errorf("decrement stock for %s: %w", sku, ErrInsufficientStock)
	}

	product.StockQuantity -= quantity
	product.UpdatedAt = c.now()
	product.Version++

	return nil
}

// SetStockOptimistic replaces a product's stock only if the caller still
// holds the current version.
func (c *Catalog) SetStockOptimistic(sku string, newStock, version int) error {
	if newStock < 0 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	product, ok := c.products[sku]
	if !ok {
		return ErrProductNotFound
	}

	if product.Version != version {
		return ErrOptimisticLockFailed
	}

	product.StockQuantity = newStock
	product.UpdatedAt = c.now()
	product.Version++

	return nil
}

func (c *Catalog) List(page, pageSize int) *OffsetPage {
	page, pageSize = normalizePage(page, pageSize)

	c.mu.RLock()
	defer c.mu.RUnlock()

	total := int64(len(c.order))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(c.order) {
		start = len(c.order)
	}
	if end > len(c.order) {
		end = len(c.order)
	}

	products := make([]models.Product, 0, end-start)
	for _, sku := range c.order[start:end] {
		products = append(products, *c.products[sku])
	}

	return &OffsetPage{
		Items:      products,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: countPages(total, pageSize),
	}
}
