package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ShopStatus статус регистрации аптеки
type ShopStatus string

const (
	ShopStatusPending  ShopStatus = "Pending"
	ShopStatusApproved ShopStatus = "Approved"
	ShopStatusRejected ShopStatus = "Rejected"
)

// OrderStatus тип статуса заказа
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusReadyForPickup OrderStatus = "Ready for Pickup"
	OrderStatusCompleted      OrderStatus = "Completed"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// ErrInvalidTransition недопустимый переход статуса
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrUnknownStatus возвращается парсерами статусов
var ErrUnknownStatus = errors.New("unknown status")

// TransitionError описывает отклонённый переход
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move %s from %q to %q", e.Entity, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

var shopTransitions = map[ShopStatus][]ShopStatus{
	ShopStatusPending:  {ShopStatusApproved, ShopStatusRejected},
	ShopStatusApproved: {},
	ShopStatusRejected: {},
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusReadyForPickup, OrderStatusCancelled},
	OrderStatusReadyForPickup: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:      {},
	OrderStatusCancelled:      {},
}

func (s ShopStatus) Valid() bool {
	_, ok := shopTransitions[s]
	return ok
}

func (s ShopStatus) Terminal() bool {
	return s.Valid() && len(shopTransitions[s]) == 0
}

// CanTransition reports whether a shop may move from s to next.
// Re-applying the current status is not a transition and returns false.
func (s ShopStatus) CanTransition(next ShopStatus) bool {
	for _, allowed := range shopTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s.Valid() && len(orderTransitions[s]) == 0
}

// CanTransition reports whether an order may move from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseShopStatus принимает "Approved", "approved", "APPROVED"
func ParseShopStatus(v string) (ShopStatus, error) {
	key := normalizeStatus(v)
	for s := range shopTransitions {
		if normalizeStatus(string(s)) == key {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: shop status %q", ErrUnknownStatus, v)
}

// ParseOrderStatus принимает "Ready for Pickup", "ReadyForPickup", "ready_for_pickup"
func ParseOrderStatus(v string) (OrderStatus, error) {
	key := normalizeStatus(v)
	for s := range orderTransitions {
		if normalizeStatus(string(s)) == key {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: order status %q", ErrUnknownStatus, v)
}

func normalizeStatus(v string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(v)))
}
