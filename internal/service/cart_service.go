package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medmarket/internal/cart"
	"medmarket/internal/domain"
	"medmarket/internal/repository"
)

// CartService корзина покупателя до оформления заказа
type CartService struct {
	carts  repository.CartRepository
	shops  repository.ShopRepository
	orders *OrderService
	tx     repository.TxManager
}

func NewCartService(carts repository.CartRepository, shops repository.ShopRepository, orders *OrderService, tx repository.TxManager) *CartService {
	return &CartService{carts: carts, shops: shops, orders: orders, tx: tx}
}

// Open создаёт пустую корзину для одобренной аптеки
func (s *CartService) Open(ctx context.Context, shopID string) (*cart.Cart, error) {
	if strings.TrimSpace(shopID) == "" {
		return nil, ErrInvalidInput
	}
	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop.Status != domain.ShopStatusApproved {
		return nil, fmt.Errorf("%w: shop %s is %s", ErrInvalidOrder, shop.Name, shop.Status)
	}
	c := cart.New(shop.ID)
	if err := s.carts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CartService) Get(ctx context.Context, id string) (*cart.Cart, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	return s.carts.GetByID(ctx, id)
}

// AddItem добавляет лекарство из склада аптеки. Суммарное количество не может превышать запас.
func (s *CartService) AddItem(ctx context.Context, cartID, medicineID string, qty int64) (*cart.Cart, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, cart.ErrInvalidQuantity)
	}
	var updated *cart.Cart
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		c, err := s.carts.GetByID(ctx, cartID)
		if err != nil {
			return err
		}
		shop, err := s.shops.GetByID(ctx, c.ShopID)
		if err != nil {
			return err
		}
		idx := shop.FindMedicine(medicineID)
		if idx < 0 {
			return fmt.Errorf("%w: medicine %s is not sold by %s", ErrInvalidOrder, medicineID, shop.Name)
		}
		med := shop.Inventory[idx]
		if err := c.Add(med, qty); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
		}
		for _, it := range c.Items {
			if it.Medicine.ID == med.ID && it.Quantity > med.Stock {
				return fmt.Errorf("%w: %w: %s available %d, in cart %d",
					ErrInvalidOrder, ErrNotEnoughStock, med.Name, med.Stock, it.Quantity)
			}
		}
		if err := s.carts.Update(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, medicineID string) (*cart.Cart, error) {
	var updated *cart.Cart
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		c, err := s.carts.GetByID(ctx, cartID)
		if err != nil {
			return err
		}
		if err := c.Remove(medicineID); err != nil {
			if errors.Is(err, cart.ErrNotInCart) {
				return fmt.Errorf("%w: %v", repository.ErrNotFound, err)
			}
			return err
		}
		if err := s.carts.Update(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Checkout превращает корзину в заказ и удаляет её
func (s *CartService) Checkout(ctx context.Context, cartID, customer string) (*domain.Order, error) {
	var created *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		c, err := s.carts.GetByID(ctx, cartID)
		if err != nil {
			return err
		}
		o, err := s.orders.PlaceOrder(ctx, c.ShopID, customer, c.Items)
		if err != nil {
			return err
		}
		if err := s.carts.Delete(ctx, c.ID); err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
