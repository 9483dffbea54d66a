package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/safar/go-checkout/internal/models"
)

func TestLedgerGetOrder(t *testing.T) {
	ledger := NewLedger()

	if _, err := ledger.GetOrder("missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("Expected ErrOrderNotFound, got: %v", err)
	}

	order := &models.Order{
		ID:          uuid.NewString(),
		OrderNumber: "ORD-1",
		Status:      models.OrderStatusConfirmed,
		TotalAmount: decimal.NewFromInt(430),
	}
	ledger.Append(order)

	got, err := ledger.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.OrderNumber != "ORD-1" {
		t.Errorf("OrderNumber = %q, want ORD-1", got.OrderNumber)
	}
}

func TestLedgerListOrders(t *testing.T) {
	ledger := NewLedger()

	for i := 0; i < 5; i++ {
		ledger.Append(&models.Order{
			ID:          uuid.NewString(),
			OrderNumber: fmt.Sprintf("ORD-%d", i),
			Status:      models.OrderStatusConfirmed,
		})
	}

	page := ledger.ListOrders(1, 2)
	if page.Total != 5 {
		t.Errorf("Total = %d, want 5", page.Total)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}

	orders := page.Items.([]models.Order)
	if len(orders) != 2 {
		t.Fatalf("Page size = %d, want 2", len(orders))
	}
	if orders[0].OrderNumber != "ORD-0" {
		t.Errorf("First order = %q, want ORD-0 (append order preserved)", orders[0].OrderNumber)
	}

	last := ledger.ListOrders(3, 2)
	lastOrders := last.Items.([]models.Order)
	if len(lastOrders) != 1 || lastOrders[0].OrderNumber != "ORD-4" {
		t.Errorf("Unexpected last page: %+v", last.Items)
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, pageSize         int
		wantPage, wantPageSize int
	}{
		{0, 0, 1, defaultPageSize},
		{-1, 10, 1, 10},
		{2, 500, 2, defaultPageSize},
		{3, 50, 3, 50},
	}

	for _, tc := range cases {
		gotPage, gotSize := normalizePage(tc.page, tc.pageSize)
		if gotPage != tc.wantPage || gotSize != tc.wantPageSize {
			t.Errorf("normalizePage(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.pageSize, gotPage, gotSize, tc.wantPage, tc.wantPageSize)
		}
	}
}
