package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine представляет лекарство в ассортименте аптеки
type Medicine struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int64           `json:"stock"`
}

// Shop аптека со своим собственным складом
type Shop struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	OwnerName string     `json:"owner_name"`
	Status    ShopStatus `json:"status"`
	Inventory []Medicine `json:"inventory"`
}

// Clone возвращает глубокую копию, склад не разделяется с оригиналом
func (s Shop) Clone() Shop {
	cp := s
	cp.Inventory = CloneInventory(s.Inventory)
	return cp
}

// FindMedicine returns the index of the medicine in the inventory or -1.
func (s *Shop) FindMedicine(id string) int {
	for i := range s.Inventory {
		if s.Inventory[i].ID == id {
			return i
		}
	}
	return -1
}

// CloneInventory копирует список лекарств
func CloneInventory(in []Medicine) []Medicine {
	if in == nil {
		return []Medicine{}
	}
	out := make([]Medicine, len(in))
	copy(out, in)
	return out
}

// CartItem позиция корзины: снимок лекарства и количество
type CartItem struct {
	Medicine Medicine `json:"medicine"`
	Quantity int64    `json:"quantity"`
}

// LineTotal price × quantity
func (it CartItem) LineTotal() decimal.Decimal {
	return it.Medicine.Price.Mul(decimal.NewFromInt(it.Quantity))
}

// Order сущность заказа на самовывоз
type Order struct {
	ID           string          `json:"id"`
	ShopID       string          `json:"shop_id"`
	ShopName     string          `json:"shop_name"`
	Items        []CartItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Status       OrderStatus     `json:"status"`
	CustomerName string          `json:"customer_name"`
	OrderDate    time.Time       `json:"order_date"`
}

// Clone returns a copy that does not share the items slice.
func (o Order) Clone() Order {
	cp := o
	cp.Items = make([]CartItem, len(o.Items))
	copy(cp.Items, o.Items)
	return cp
}
