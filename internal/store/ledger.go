package store

import (
	"sync"

	"github.com/safar/go-checkout/internal/models"
)

// Ledger records completed orders for the lifetime of the process.
type Ledger struct {
	mu     sync.RWMutex
	orders []*models.Order
	byID   map[string]*models.Order
}

func NewLedger() *Ledger {
	return &Ledger{byID: make(map[string]*models.Order)}
}

func (l *Ledger) Append(order *models.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = append(l.orders, order)
	l.byID[order.ID] = order
}

func (l *Ledger) GetOrder(id string) (*models.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	order, ok := l.byID[id]
	if !ok {
		return nil, ErrOrderNotFound
	}

	return order, nil
}

func (l *Ledger) ListOrders(page, pageSize int) *OffsetPage {
	page, pageSize = normalizePage(page, pageSize)

	l.mu.RLock()
	defer l.mu.RUnlock()

	total := int64(len(l.orders))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(l.orders) {
		start = len(l.orders)
	}
	if end > len(l.orders) {
		end = len(l.orders)
	}

	orders := make([]models.Order, 0, end-start)
	for _, order := range l.orders[start:end] {
		orders = append(orders, *order)
	}

	return &OffsetPage{
		Items:      orders,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: countPages(total, pageSize),
	}
}
