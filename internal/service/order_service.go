package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"medmarket/internal/domain"
	"medmarket/internal/query"
	"medmarket/internal/repository"
)

// OrderService реализует логику заказов: оформление, смена статуса, отмена с возвратом на склад
type OrderService struct {
	shops  repository.ShopRepository
	orders repository.OrderRepository
	tx     repository.TxManager
}

func NewOrderService(shops repository.ShopRepository, orders repository.OrderRepository, tx repository.TxManager) *OrderService {
	return &OrderService{shops: shops, orders: orders, tx: tx}
}

var (
	ErrInvalidOrder   = errors.New("invalid order")
	ErrNotEnoughStock = errors.New("not enough stock")
)

// PlaceOrder проверяет аптеку и наличие товара, затем атомарно списывает запас и создаёт заказ.
// Either every line is fulfilled or nothing changes.
func (s *OrderService) PlaceOrder(ctx context.Context, shopID, customer string, items []domain.CartItem) (*domain.Order, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidOrder)
	}
	lines, err := mergeLines(items)
	if err != nil {
		return nil, err
	}

	var created *domain.Order
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		shop, err := s.shops.GetByID(ctx, shopID)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: shop %s does not exist", ErrInvalidOrder, shopID)
		}
		if err != nil {
			return err
		}
		if shop.Status != domain.ShopStatusApproved {
			return fmt.Errorf("%w: shop %s is %s", ErrInvalidOrder, shop.Name, shop.Status)
		}

		// validate every line before touching stock
		picked := make([]int, len(lines))
		orderItems := make([]domain.CartItem, len(lines))
		for i, ln := range lines {
			idx := shop.FindMedicine(ln.Medicine.ID)
			if idx < 0 {
				return fmt.Errorf("%w: medicine %s is not sold by %s", ErrInvalidOrder, ln.Medicine.ID, shop.Name)
			}
			med := shop.Inventory[idx]
			if med.Stock < ln.Quantity {
				return fmt.Errorf("%w: %w: %s available %d, requested %d",
					ErrInvalidOrder, ErrNotEnoughStock, med.Name, med.Stock, ln.Quantity)
			}
			picked[i] = idx
			// order lines keep name and price only
			med.Stock = 0
			orderItems[i] = domain.CartItem{Medicine: med, Quantity: ln.Quantity}
		}

		for i, idx := range picked {
			shop.Inventory[idx].Stock -= orderItems[i].Quantity
		}
		if err := s.shops.Update(ctx, shop); err != nil {
			return err
		}

		o := domain.Order{
			ShopID:       shop.ID,
			ShopName:     shop.Name,
			Items:        orderItems,
			Total:        query.CartSubtotal(orderItems),
			Status:       domain.OrderStatusPending,
			CustomerName: customer,
		}
		if err := s.orders.Create(ctx, &o); err != nil {
			return err
		}
		created = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// mergeLines folds repeated medicines into one line, keeping the first position.
func mergeLines(items []domain.CartItem) ([]domain.CartItem, error) {
	out := make([]domain.CartItem, 0, len(items))
	pos := make(map[string]int, len(items))
	for _, it := range items {
		if it.Medicine.ID == "" {
			return nil, fmt.Errorf("%w: medicine id is required", ErrInvalidOrder)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for %s must be at least 1", ErrInvalidOrder, it.Medicine.ID)
		}
		if i, ok := pos[it.Medicine.ID]; ok {
			if out[i].Quantity > math.MaxInt64-it.Quantity {
				return nil, fmt.Errorf("%w: quantity for %s is too large", ErrInvalidOrder, it.Medicine.ID)
			}
			out[i].Quantity += it.Quantity
			continue
		}
		pos[it.Medicine.ID] = len(out)
		out = append(out, it)
	}
	return out, nil
}

// GetOrder возвращает заказ по id
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	return s.orders.GetByID(ctx, id)
}

// ListOrders returns matching orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, f repository.OrderFilter) ([]domain.Order, error) {
	return s.orders.List(ctx, f)
}

// ListOrdersForShop заказы конкретной аптеки для её владельца
func (s *OrderService) ListOrdersForShop(ctx context.Context, shopID string) ([]domain.Order, error) {
	if _, err := s.shops.GetByID(ctx, shopID); err != nil {
		return nil, err
	}
	return s.orders.List(ctx, repository.OrderFilter{ShopID: shopID})
}

func (s *OrderService) ListOrdersForCustomer(ctx context.Context, customer string) ([]domain.Order, error) {
	if strings.TrimSpace(customer) == "" {
		return nil, ErrInvalidInput
	}
	return s.orders.List(ctx, repository.OrderFilter{CustomerName: customer})
}

// SetOrderStatus двигает заказ только вперёд по таблице переходов.
// Повторная установка текущего статуса идемпотентна. Отмена возвращает товар на склад.
func (s *OrderService) SetOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: order id is required", ErrInvalidInput)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrInvalidInput, status)
	}
	var updated *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if o.Status == status {
			updated = o
			return nil
		}
		if !o.Status.CanTransition(status) {
			return &domain.TransitionError{Entity: "order", From: string(o.Status), To: string(status)}
		}
		if status == domain.OrderStatusCancelled {
			if err := s.restock(ctx, o); err != nil {
				return err
			}
		}
		o.Status = status
		if err := s.orders.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// restock возвращает количества заказа на склад аптеки
func (s *OrderService) restock(ctx context.Context, o *domain.Order) error {
	shop, err := s.shops.GetByID(ctx, o.ShopID)
	if err != nil {
		return fmt.Errorf("restock shop %s: %w", o.ShopID, err)
	}
	for _, it := range o.Items {
		idx := shop.FindMedicine(it.Medicine.ID)
		if idx < 0 {
			return fmt.Errorf("restock %s: %w", it.Medicine.ID, repository.ErrNotFound)
		}
		shop.Inventory[idx].Stock += it.Quantity
	}
	return s.shops.Update(ctx, shop)
}

func (s *OrderService) MarkReadyForPickup(ctx context.Context, id string) (*domain.Order, error) {
	return s.SetOrderStatus(ctx, id, domain.OrderStatusReadyForPickup)
}

func (s *OrderService) CompleteOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.SetOrderStatus(ctx, id, domain.OrderStatusCompleted)
}

// CancelOrder отменяет заказ в статусе Pending или Ready for Pickup
func (s *OrderService) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.SetOrderStatus(ctx, id, domain.OrderStatusCancelled)
}
