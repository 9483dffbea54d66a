package store

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/safar/go-checkout/internal/models"
)

var gramsPerKg = decimal.NewFromInt(1000)

// writeShipmentNotice prints one line per shippable item with its total
// weight in grams, then the package weight in kilograms.
func writeShipmentNotice(w io.Writer, items []models.CartItem) error {
	if _, err := fmt.Fprintln(w, "** Shipment notice **"); err != nil {
		return err
	}

	totalWeight := decimal.Zero
	for _, item := range items {
		if !item.Product.IsShippable() {
			continue
		}

		itemWeight := item.Product.Weight.Mul(decimal.NewFromInt(int64(item.Quantity)))
		totalWeight = totalWeight.Add(itemWeight)

		if _, err := fmt.Fprintf(w, "%dx %s %sg\n",
			item.Quantity, item.Product.Name, itemWeight.Mul(gramsPerKg).StringFixed(0)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Total package weight %skg\n", totalWeight.StringFixed(1))
	return err
}

// writeReceipt prints the itemized receipt. Amounts are rounded to whole
// currency units for display only.
func writeReceipt(w io.Writer, items []models.CartItem, subtotal, shipping, total, balance decimal.Decimal) error {
	if _, err := fmt.Fprintln(w, "** Checkout receipt **"); err != nil {
		return err
	}

	for _, item := range items {
		if _, err := fmt.Fprintf(w, "%dx %s %s\n",
			item.Quantity, item.Product.Name, item.LineTotal().StringFixed(0)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "----------------------"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Subtotal %s\n", subtotal.StringFixed(0)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Shipping %s\n", shipping.StringFixed(0)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Amount %s\n", total.StringFixed(0)); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Customer balance %s\n", balance.StringFixed(0))
	return err
}
