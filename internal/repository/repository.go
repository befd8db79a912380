package repository

import (
	"context"
	"errors"
	"strings"

	"medmarket/internal/cart"
	"medmarket/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists возвращается при повторном ID
var ErrAlreadyExists = errors.New("already exists")

// ShopFilter параметры фильтрации списка аптек
type ShopFilter struct {
	Status        domain.ShopStatus
	OwnerName     string
	NameSubstring string
}

// OrderFilter параметры фильтрации заказов
type OrderFilter struct {
	ShopID       string
	Status       domain.OrderStatus
	CustomerName string
}

// ShopRepository интерфейс репозитория аптек
type ShopRepository interface {
	Create(ctx context.Context, s *domain.Shop) error
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	Update(ctx context.Context, s *domain.Shop) error
	List(ctx context.Context, f ShopFilter) ([]domain.Shop, error)
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	// List returns orders newest first.
	List(ctx context.Context, f OrderFilter) ([]domain.Order, error)
}

// CartRepository хранит незавершённые корзины покупателей
type CartRepository interface {
	Create(ctx context.Context, c *cart.Cart) error
	GetByID(ctx context.Context, id string) (*cart.Cart, error)
	Update(ctx context.Context, c *cart.Cart) error
	Delete(ctx context.Context, id string) error
}

// TxManager абстракция транзакции. Для in-memory: глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (f ShopFilter) match(s domain.Shop) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.OwnerName != "" && !strings.EqualFold(s.OwnerName, f.OwnerName) {
		return false
	}
	return containsIgnoreCase(s.Name, f.NameSubstring)
}

func (f OrderFilter) match(o domain.Order) bool {
	if f.ShopID != "" && o.ShopID != f.ShopID {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.CustomerName != "" && !strings.EqualFold(o.CustomerName, f.CustomerName) {
		return false
	}
	return true
}
