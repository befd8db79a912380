package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"medmarket/internal/domain"
	"medmarket/internal/repository"
)

func TestCart_AddAndCheckout(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	shop := approvedShop(t, svc)

	c, err := svc.carts.Open(ctx, shop.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := svc.carts.AddItem(ctx, c.ID, "med1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	c, err = svc.carts.AddItem(ctx, c.ID, "med1", 1)
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if len(c.Items) != 1 || c.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", c.Items)
	}
	if !c.Subtotal().Equal(decimal.RequireFromString("5.00")) {
		t.Fatalf("subtotal expected 5.00, got %s", c.Subtotal())
	}

	o, err := svc.carts.Checkout(ctx, c.ID, "Customer")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !o.Total.Equal(c.Subtotal()) {
		t.Fatalf("order total %s != cart subtotal %s", o.Total, c.Subtotal())
	}
	if got := stockOf(t, svc, shop.ID, "med1"); got != 98 {
		t.Fatalf("stock expected 98, got %d", got)
	}
	if _, err := svc.carts.Get(ctx, c.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("cart should be discarded after checkout, got %v", err)
	}
}

func TestCart_Rules(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	shop := approvedShop(t, svc)
	pending, _ := svc.shops.RegisterShop(ctx, "Pending", "B", "2 Main")

	if _, err := svc.carts.Open(ctx, pending.ID); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected pending shop to be closed for carts, got %v", err)
	}
	if _, err := svc.carts.Open(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	c, _ := svc.carts.Open(ctx, shop.ID)
	if _, err := svc.carts.AddItem(ctx, c.ID, "med9", 1); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected unknown medicine rejected, got %v", err)
	}
	if _, err := svc.carts.AddItem(ctx, c.ID, "med2", 4); !errors.Is(err, ErrNotEnoughStock) {
		t.Fatalf("expected stock check, got %v", err)
	}
	if _, err := svc.carts.AddItem(ctx, c.ID, "med2", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if _, err := svc.carts.RemoveItem(ctx, c.ID, "med1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not in cart, got %v", err)
	}
	if _, err := svc.carts.Checkout(ctx, c.ID, "C"); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected empty cart checkout to fail, got %v", err)
	}
	// failed checkout keeps the cart
	if _, err := svc.carts.Get(ctx, c.ID); err != nil {
		t.Fatalf("cart lost after failed checkout: %v", err)
	}
}

func TestCart_OutOfStockCannotBeAdded(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	shop := approvedShop(t, svc)
	if _, err := svc.orders.PlaceOrder(ctx, shop.ID, "C", []domain.CartItem{line("med2", 3)}); err != nil {
		t.Fatal(err)
	}
	c, _ := svc.carts.Open(ctx, shop.ID)
	if _, err := svc.carts.AddItem(ctx, c.ID, "med2", 1); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected out of stock, got %v", err)
	}
}

func TestCart_HugeQuantityKeepsCartIntact(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	shop := approvedShop(t, svc)
	c, _ := svc.carts.Open(ctx, shop.ID)
	if _, err := svc.carts.AddItem(ctx, c.ID, "med1", 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.carts.AddItem(ctx, c.ID, "med1", math.MaxInt64); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected invalid order, got %v", err)
	}
	got, err := svc.carts.Get(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 100 {
		t.Fatalf("cart corrupted: %+v", got.Items)
	}
}
