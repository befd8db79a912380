// Package cart holds the in-progress selection of a customer before it becomes an order.
package cart

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"medmarket/internal/domain"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrOutOfStock      = errors.New("medicine is out of stock")
	ErrNotInCart       = errors.New("medicine is not in cart")
)

// Cart корзина, привязанная к одной аптеке
type Cart struct {
	ID     string            `json:"id"`
	ShopID string            `json:"shop_id"`
	Items  []domain.CartItem `json:"items"`
}

func New(shopID string) *Cart {
	return &Cart{ShopID: shopID, Items: []domain.CartItem{}}
}

// Add кладёт лекарство в корзину; повторное добавление увеличивает количество.
// The snapshot of an existing line is refreshed so the cart shows the latest price.
func (c *Cart) Add(med domain.Medicine, qty int64) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if med.Stock <= 0 {
		return ErrOutOfStock
	}
	for i := range c.Items {
		if c.Items[i].Medicine.ID == med.ID {
			if c.Items[i].Quantity > math.MaxInt64-qty {
				return ErrInvalidQuantity
			}
			c.Items[i].Medicine = med
			c.Items[i].Quantity += qty
			return nil
		}
	}
	c.Items = append(c.Items, domain.CartItem{Medicine: med, Quantity: qty})
	return nil
}

func (c *Cart) Remove(medicineID string) error {
	for i := range c.Items {
		if c.Items[i].Medicine.ID == medicineID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return ErrNotInCart
}

func (c *Cart) Empty() bool { return len(c.Items) == 0 }

// Subtotal сумма price × quantity по всем позициям
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func (c Cart) Clone() Cart {
	cp := c
	cp.Items = make([]domain.CartItem, len(c.Items))
	copy(cp.Items, c.Items)
	return cp
}
