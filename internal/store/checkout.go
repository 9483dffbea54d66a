package store

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/safar/go-checkout/internal/models"
)

// Pay withdraws amount from the customer's balance. The balance never
// goes below zero; payment fails instead, leaving it untouched.
func Pay(c *models.Customer, amount decimal.Decimal) error {
	if c.Balance.LessThan(amount) {
		return fmt.Errorf("%s: %w", c.Name, ErrInsufficientBalance)
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}

// CheckoutService turns a cart into a paid, stock-adjusted order. It
// validates every item first, emits the shipment notice, charges the
// customer, commits stock, records the order and prints the receipt.
// Not safe for concurrent carts over shared stock.
type CheckoutService struct {
	catalog     *Catalog
	ledger      *Ledger
	shippingFee decimal.Decimal
	out         io.Writer
	logger      *zap.Logger
	now         func() time.Time
}

func NewCheckoutService(catalog *Catalog, ledger *Ledger, shippingFee decimal.Decimal, out io.Writer, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		catalog:     catalog,
		ledger:      ledger,
		shippingFee: shippingFee,
		out:         out,
		logger:      logger,
		now:         time.Now,
	}
}

func generateOrderNumber(at time.Time) string {
	return fmt.Sprintf("ORD-%d", at.UnixNano())
}

// Checkout runs the full sequence. Any validation failure aborts before
// anything is printed or mutated; once payment succeeds the remaining
// steps cannot fail by construction.
func (s *CheckoutService) Checkout(customer *models.Customer, cart *Cart) (*models.Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	now := s.now()
	demand := cart.demandBySKU()

	var subtotal decimal.Decimal
	needsShipping := false

	for _, item := range cart.Items() {
		product := item.Product

		if product.IsExpired(now) {
			s.logger.Warn("checkout rejected",
				zap.String("product", product.Name),
				zap.Error(ErrProductExpired))
			return nil, fmt.Errorf("%s: %w", product.Name, ErrProductExpired)
		}

		if demand[product.SKU] > product.StockQuantity {
			s.logger.Warn("checkout rejected",
				zap.String("product", product.Name),
				zap.Int("requested", demand[product.SKU]),
				zap.Int("available", product.StockQuantity),
				zap.Error(ErrOutOfStock))
			return nil, fmt.Errorf("%s: %w", product.Name, ErrOutOfStock)
		}

		subtotal = subtotal.Add(item.LineTotal())

		if product.IsShippable() {
			needsShipping = true
		}
	}

	shipping := decimal.Zero
	if needsShipping {
		shipping = s.shippingFee
	}
	total := subtotal.Add(shipping)

	// Checked before the shipment notice prints, so a doomed payment
	// produces no output at all.
	if customer.Balance.LessThan(total) {
		s.logger.Warn("checkout rejected",
			zap.String("customer", customer.Name),
			zap.String("total", total.String()),
			zap.String("balance", customer.Balance.String()),
			zap.Error(ErrInsufficientBalance))
		return nil, fmt.Errorf("%s: %w", customer.Name, ErrInsufficientBalance)
	}

	if needsShipping {
		if err := writeShipmentNotice(s.out, cart.Items()); err != nil {
			return nil, fmt.Errorf("write shipment notice: %w", err)
		}
	}

	if err := Pay(customer, total); err != nil {
		// Unreachable after the balance check above.
		return nil, fmt.Errorf("charge customer: %w", err)
	}

	for _, item := range cart.Items() {
		if err := s.catalog.DecrementStock(item.Product.SKU, item.Quantity); err != nil {
			return nil, fmt.Errorf("commit stock for %s: %w", item.Product.Name, err)
		}
	}

	order := buildOrder(customer, cart, subtotal, shipping, total, now)
	s.ledger.Append(order)

	if err := writeReceipt(s.out, cart.Items(), subtotal, shipping, total, customer.Balance); err != nil {
		return nil, fmt.Errorf("write receipt: %w", err)
	}

	s.logger.Info("checkout complete",
		zap.String("order_number", order.OrderNumber),
		zap.String("total", total.String()),
		zap.Int("items", len(cart.Items())))

	return order, nil
}

func buildOrder(customer *models.Customer, cart *Cart, subtotal, shipping, total decimal.Decimal, at time.Time) *models.Order {
	items := make([]models.OrderItem, 0, len(cart.Items()))
	for _, item := range cart.Items() {
		items = append(items, models.OrderItem{
			SKU:       item.Product.SKU,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			Subtotal:  item.LineTotal(),
		})
	}

	return &models.Order{
		ID:           uuid.NewString(),
		OrderNumber:  generateOrderNumber(at),
		CustomerName: customer.Name,
		Status:       models.OrderStatusConfirmed,
		Subtotal:     subtotal,
		ShippingFee:  shipping,
		TotalAmount:  total,
		CreatedAt:    at,
		Items:        items,
	}
}
