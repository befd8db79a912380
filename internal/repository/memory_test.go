package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"medmarket/internal/cart"
	"medmarket/internal/domain"
)

func testShop(name string, status domain.ShopStatus) domain.Shop {
	return domain.Shop{
		Name:      name,
		OwnerName: "Owner " + name,
		Address:   "1 Main",
		Status:    status,
		Inventory: []domain.Medicine{{ID: "med1", Name: "Paracetamol", Price: decimal.RequireFromString("2.50"), Stock: 5}},
	}
}

func TestMemoryStore_ShopCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := testShop("A", domain.ShopStatusPending)
	if err := store.Create(ctx, &s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.ID == "" {
		t.Fatalf("no id")
	}

	got, err := store.GetByID(ctx, s.ID)
	if err != nil || got.ID != s.ID {
		t.Fatalf("get: %v", err)
	}

	// returned copy must not alias stored inventory
	got.Inventory[0].Stock = 0
	again, _ := store.GetByID(ctx, s.ID)
	if again.Inventory[0].Stock != 5 {
		t.Fatalf("store aliased by caller")
	}

	s.Status = domain.ShopStatusApproved
	if err := store.Update(ctx, &s); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := store.Update(ctx, &domain.Shop{ID: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := store.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found")
	}
	dup := domain.Shop{ID: s.ID}
	if err := store.Create(ctx, &dup); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestList_ShopsKeepRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	add := func(n string, st domain.ShopStatus) {
		s := testShop(n, st)
		if err := store.Create(ctx, &s); err != nil {
			t.Fatal(err)
		}
	}
	add("City Health", domain.ShopStatusApproved)
	add("Wellness Corner", domain.ShopStatusPending)
	add("QuickCare", domain.ShopStatusApproved)

	list, _ := store.List(ctx, ShopFilter{})
	if len(list) != 3 || list[0].Name != "City Health" || list[2].Name != "QuickCare" {
		t.Fatalf("unexpected order: %+v", list)
	}

	list, _ = store.List(ctx, ShopFilter{Status: domain.ShopStatusApproved})
	if len(list) != 2 {
		t.Fatalf("status filter: %d", len(list))
	}

	list, _ = store.List(ctx, ShopFilter{NameSubstring: "care"})
	if len(list) != 1 || list[0].Name != "QuickCare" {
		t.Fatalf("name filter: %+v", list)
	}

	list, _ = store.List(ctx, ShopFilter{OwnerName: "owner wellness corner"})
	if len(list) != 1 {
		t.Fatalf("owner filter: %+v", list)
	}
}

func TestMemoryTx_TransactionalUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	tx := NewMemoryTx(store)
	orders := NewMemoryOrders(store)

	s := testShop("A", domain.ShopStatusApproved)
	if err := store.Create(ctx, &s); err != nil {
		t.Fatal(err)
	}

	// emulate atomic create order with stock decrease
	err := tx.WithTransaction(ctx, func(ctx context.Context) error {
		ss, err := store.GetByID(ctx, s.ID)
		if err != nil {
			return err
		}
		if ss.Inventory[0].Stock < 3 {
			t.Fatalf("stock precondition")
		}
		ss.Inventory[0].Stock -= 3
		if err := store.Update(ctx, ss); err != nil {
			return err
		}
		o := domain.Order{ShopID: s.ID, CustomerName: "John", Items: []domain.CartItem{{Medicine: ss.Inventory[0], Quantity: 3}}, Status: domain.OrderStatusPending}
		// nested transactions reuse the outer lock
		return tx.WithTransaction(ctx, func(ctx context.Context) error {
			return orders.Create(ctx, &o)
		})
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	ss, _ := store.GetByID(context.Background(), s.ID)
	if ss.Inventory[0].Stock != 2 {
		t.Fatalf("stock expected 2, got %v", ss.Inventory[0].Stock)
	}
}

func TestMemoryOrders_ListSortedByDate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orders := NewMemoryOrders(store)

	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	mk := func(shop string, at time.Time) domain.Order {
		o := domain.Order{ShopID: shop, CustomerName: "C", Status: domain.OrderStatusPending, OrderDate: at}
		if err := orders.Create(ctx, &o); err != nil {
			t.Fatal(err)
		}
		return o
	}
	// inserted out of date order on purpose
	late := mk("a", base.Add(2*time.Hour))
	early := mk("b", base)
	mid := mk("a", base.Add(time.Hour))
	sameAsMid := mk("a", base.Add(time.Hour))

	list, err := orders.List(ctx, OrderFilter{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{late.ID, sameAsMid.ID, mid.ID, early.ID}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d: want %s got %s", i, id, list[i].ID)
		}
	}

	list, _ = orders.List(ctx, OrderFilter{ShopID: "b"})
	if len(list) != 1 || list[0].ID != early.ID {
		t.Fatalf("shop filter: %+v", list)
	}
}

func TestMemoryOrders_AssignsDateAndUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	fixed := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	orders := NewMemoryOrders(store)

	o := domain.Order{ShopID: "a", Status: domain.OrderStatusPending}
	if err := orders.Create(ctx, &o); err != nil {
		t.Fatal(err)
	}
	if !o.OrderDate.Equal(fixed) || o.ID == "" {
		t.Fatalf("date/id not assigned: %+v", o)
	}
	o.Status = domain.OrderStatusReadyForPickup
	if err := orders.Update(ctx, &o); err != nil {
		t.Fatal(err)
	}
	got, _ := orders.GetByID(ctx, o.ID)
	if got.Status != domain.OrderStatusReadyForPickup {
		t.Fatalf("status not updated")
	}
	list, _ := orders.List(ctx, OrderFilter{Status: domain.OrderStatusReadyForPickup})
	if len(list) != 1 {
		t.Fatalf("status filter: %d", len(list))
	}
	if err := orders.Update(ctx, &domain.Order{ID: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found")
	}
}

func TestMemoryCarts_CRUD(t *testing.T) {
	ctx := context.Background()
	carts := NewMemoryCarts(NewMemoryStore())
	c := cart.New("shop1")
	if err := carts.Create(ctx, c); err != nil {
		t.Fatal(err)
	}
	if err := c.Add(domain.Medicine{ID: "m1", Price: decimal.NewFromInt(1), Stock: 1}, 1); err != nil {
		t.Fatal(err)
	}
	if err := carts.Update(ctx, c); err != nil {
		t.Fatal(err)
	}
	got, err := carts.GetByID(ctx, c.ID)
	if err != nil || len(got.Items) != 1 {
		t.Fatalf("get: %v %+v", err, got)
	}
	if err := carts.Delete(ctx, c.ID); err != nil {
		t.Fatal(err)
	}
	if err := carts.Delete(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found")
	}
}
