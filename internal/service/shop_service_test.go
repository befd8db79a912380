package service

import (
	"context"
	"errors"
	"testing"

	"medmarket/internal/domain"
	"medmarket/internal/repository"
)

func TestRegisterShop_Pending(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	s, err := svc.shops.RegisterShop(ctx, "City Health", "A", "1 Main")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.ID == "" {
		t.Fatalf("expected id assigned")
	}
	if s.Status != domain.ShopStatusPending {
		t.Fatalf("expected pending, got %s", s.Status)
	}
	if len(s.Inventory) != 2 {
		t.Fatalf("expected default catalog, got %d items", len(s.Inventory))
	}

	approved, err := svc.shops.ListApprovedShops(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(approved) != 0 {
		t.Fatalf("pending shop must not be listed for customers")
	}
	all, _ := svc.shops.ListShops(ctx, repository.ShopFilter{})
	if len(all) != 1 || all[0].Status != domain.ShopStatusPending {
		t.Fatalf("expected one pending shop, got %+v", all)
	}
}

func TestRegisterShop_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	if _, err := svc.shops.RegisterShop(ctx, "", "A", "1 Main"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.shops.RegisterShop(ctx, "N", " ", "1 Main"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.shops.RegisterShop(ctx, "N", "A", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterShop_InventoryIsOwnedCopy(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	a := approvedShop(t, svc)
	b := approvedShop(t, svc)
	if _, err := svc.orders.PlaceOrder(ctx, a.ID, "C", []domain.CartItem{line("med1", 10)}); err != nil {
		t.Fatal(err)
	}
	if got := stockOf(t, svc, b.ID, "med1"); got != 100 {
		t.Fatalf("other shop stock changed: %d", got)
	}
}

func TestApproveShop_ListedExactlyOnce(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	s, _ := svc.shops.RegisterShop(ctx, "City Health", "A", "1 Main")
	if _, err := svc.shops.ApproveShop(ctx, s.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	// approving again is idempotent
	if _, err := svc.shops.ApproveShop(ctx, s.ID); err != nil {
		t.Fatalf("approve twice: %v", err)
	}
	approved, _ := svc.shops.ListApprovedShops(ctx)
	n := 0
	for _, a := range approved {
		if a.ID == s.ID {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("expected shop listed once, got %d", n)
	}
}

func TestRejectShop_Permanent(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	s, _ := svc.shops.RegisterShop(ctx, "City Health", "A", "1 Main")
	if _, err := svc.shops.RejectShop(ctx, s.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if _, err := svc.shops.ApproveShop(ctx, s.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	approved, _ := svc.shops.ListApprovedShops(ctx)
	if len(approved) != 0 {
		t.Fatalf("rejected shop must not be listed")
	}
	got, _ := svc.shops.GetShop(ctx, s.ID)
	if got.Status != domain.ShopStatusRejected {
		t.Fatalf("expected rejected, got %s", got.Status)
	}
}

func TestSetShopStatus_Errors(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	if _, err := svc.shops.ApproveShop(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	s, _ := svc.shops.RegisterShop(ctx, "City Health", "A", "1 Main")
	if _, err := svc.shops.SetShopStatus(ctx, s.ID, domain.ShopStatusPending); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := svc.shops.SetShopStatus(ctx, "", domain.ShopStatusApproved); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSeed_KeepsIDsAndStatus(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	shops := []domain.Shop{
		{ID: "shop1", Name: "One", Status: domain.ShopStatusApproved},
		{ID: "shop2", Name: "Two", Status: domain.ShopStatusPending},
	}
	if err := svc.shops.Seed(ctx, shops); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := svc.shops.GetShop(ctx, "shop1")
	if err != nil || got.Status != domain.ShopStatusApproved {
		t.Fatalf("seed lost shop1: %v %+v", err, got)
	}
	if err := svc.shops.Seed(ctx, shops[:1]); !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := svc.shops.Seed(ctx, []domain.Shop{{ID: "x", Status: "Closed"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestListPendingShops_ReviewQueue(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	approvedShop(t, svc)
	p, _ := svc.shops.RegisterShop(ctx, "QuickCare", "P", "789 Pine")
	r, _ := svc.shops.RegisterShop(ctx, "Rejected", "R", "1 Elm")
	if _, err := svc.shops.RejectShop(ctx, r.ID); err != nil {
		t.Fatal(err)
	}
	pending, err := svc.shops.ListPendingShops(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 || pending[0].ID != p.ID {
		t.Fatalf("unexpected review queue: %+v", pending)
	}
}
