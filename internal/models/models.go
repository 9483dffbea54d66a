package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	StockQuantity int              `json:"stock_quantity"`
	Weight        *decimal.Decimal `json:"weight,omitempty"`
	ExpiresAt     *time.Time       `json:"expires_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Version       int              `json:"version"`
}

// IsShippable reports whether the product needs physical shipping.
// Shippability is carried by the presence of a weight, not a subtype.
func (p *Product) IsShippable() bool {
	return p.Weight != nil
}

func (p *Product) IsExpirable() bool {
	return p.ExpiresAt != nil
}

// IsExpired reports whether the product is past its expiry date at the
// given instant. Products without an expiry date never expire.
func (p *Product) IsExpired(at time.Time) bool {
	return p.ExpiresAt != nil && at.After(*p.ExpiresAt)
}

type Customer struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

type CartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingFee  decimal.Decimal `json:"shipping_fee"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
	Items        []OrderItem     `json:"items,omitempty"`
}

type OrderItem struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

const OrderStatusConfirmed = "confirmed"
