// Package query contains read-side projections over store snapshots. Nothing here mutates its input.
package query

import (
	"github.com/shopspring/decimal"

	"medmarket/internal/domain"
)

func ShopsByStatus(shops []domain.Shop, status domain.ShopStatus) []domain.Shop {
	out := make([]domain.Shop, 0, len(shops))
	for _, s := range shops {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out
}

// ApprovedShops is the customer-facing listing.
func ApprovedShops(shops []domain.Shop) []domain.Shop {
	return ShopsByStatus(shops, domain.ShopStatusApproved)
}

// PendingShops is the admin review queue.
func PendingShops(shops []domain.Shop) []domain.Shop {
	return ShopsByStatus(shops, domain.ShopStatusPending)
}

func OrdersByStatus(orders []domain.Order, status domain.OrderStatus) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// OpenOrderCount counts orders that are not completed yet.
func OpenOrderCount(orders []domain.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status != domain.OrderStatusCompleted {
			n++
		}
	}
	return n
}

func LineTotal(it domain.CartItem) decimal.Decimal {
	return it.LineTotal()
}

func CartSubtotal(items []domain.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// ItemCount sums quantities across lines.
func ItemCount(items []domain.CartItem) int64 {
	var n int64
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func InStock(m domain.Medicine) bool {
	return m.Stock > 0
}
