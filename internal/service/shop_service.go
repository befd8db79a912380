package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medmarket/internal/domain"
	"medmarket/internal/query"
	"medmarket/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

// InventorySource отдаёт стартовый склад для новой аптеки
type InventorySource interface {
	Medicines() []domain.Medicine
}

// ShopService инкапсулирует регистрацию аптек и их модерацию
type ShopService struct {
	repo    repository.ShopRepository
	tx      repository.TxManager
	catalog InventorySource
}

func NewShopService(repo repository.ShopRepository, tx repository.TxManager, catalog InventorySource) *ShopService {
	return &ShopService{repo: repo, tx: tx, catalog: catalog}
}

// RegisterShop создаёт заявку на регистрацию со статусом Pending и копией каталога
func (s *ShopService) RegisterShop(ctx context.Context, name, ownerName, address string) (*domain.Shop, error) {
	name, ownerName, address = strings.TrimSpace(name), strings.TrimSpace(ownerName), strings.TrimSpace(address)
	if name == "" || ownerName == "" || address == "" {
		return nil, ErrInvalidInput
	}
	shop := domain.Shop{
		Name:      name,
		Address:   address,
		OwnerName: ownerName,
		Status:    domain.ShopStatusPending,
		Inventory: s.catalog.Medicines(),
	}
	if err := s.repo.Create(ctx, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// Seed inserts shops as they are, keeping their ids and statuses.
func (s *ShopService) Seed(ctx context.Context, shops []domain.Shop) error {
	for i := range shops {
		if !shops[i].Status.Valid() {
			return fmt.Errorf("%w: shop %s has status %q", ErrInvalidInput, shops[i].Name, shops[i].Status)
		}
		if err := s.repo.Create(ctx, &shops[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *ShopService) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ShopService) ListShops(ctx context.Context, f repository.ShopFilter) ([]domain.Shop, error) {
	return s.repo.List(ctx, f)
}

// ListApprovedShops витрина для покупателей: только одобренные аптеки
func (s *ShopService) ListApprovedShops(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.repo.List(ctx, repository.ShopFilter{})
	if err != nil {
		return nil, err
	}
	return query.ApprovedShops(shops), nil
}

// ListPendingShops очередь заявок на проверку администратором
func (s *ShopService) ListPendingShops(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.repo.List(ctx, repository.ShopFilter{})
	if err != nil {
		return nil, err
	}
	return query.PendingShops(shops), nil
}

// SetShopStatus переводит аптеку из Pending в Approved или Rejected.
// Повторное применение текущего статуса ничего не меняет.
func (s *ShopService) SetShopStatus(ctx context.Context, id string, status domain.ShopStatus) (*domain.Shop, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	if status != domain.ShopStatusApproved && status != domain.ShopStatusRejected {
		return nil, fmt.Errorf("%w: shop status must be %s or %s", ErrInvalidInput, domain.ShopStatusApproved, domain.ShopStatusRejected)
	}
	var updated *domain.Shop
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		shop, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if shop.Status == status {
			updated = shop
			return nil
		}
		if !shop.Status.CanTransition(status) {
			return &domain.TransitionError{Entity: "shop", From: string(shop.Status), To: string(status)}
		}
		shop.Status = status
		if err := s.repo.Update(ctx, shop); err != nil {
			return err
		}
		updated = shop
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ShopService) ApproveShop(ctx context.Context, id string) (*domain.Shop, error) {
	return s.SetShopStatus(ctx, id, domain.ShopStatusApproved)
}

func (s *ShopService) RejectShop(ctx context.Context, id string) (*domain.Shop, error) {
	return s.SetShopStatus(ctx, id, domain.ShopStatusRejected)
}
