package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"medmarket/internal/cart"
	"medmarket/internal/domain"
)

type storedOrder struct {
	order domain.Order
	seq   int64
}

// MemoryStore объединённое in-memory хранилище аптек, заказов и корзин
type MemoryStore struct {
	mu        sync.RWMutex
	now       func() time.Time
	orderSeq  int64
	shopOrder []string
	shopsByID map[string]domain.Shop
	orders    map[string]storedOrder
	carts     map[string]cart.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:       func() time.Time { return time.Now().UTC() },
		shopsByID: make(map[string]domain.Shop),
		orders:    make(map[string]storedOrder),
		carts:     make(map[string]cart.Cart),
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Ensure interfaces
var _ ShopRepository = (*MemoryStore)(nil)

// ShopRepository implementation
func (m *MemoryStore) Create(ctx context.Context, s *domain.Shop) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if _, ok := m.shopsByID[s.ID]; ok {
		return fmt.Errorf("shop %s: %w", s.ID, ErrAlreadyExists)
	}
	m.shopsByID[s.ID] = s.Clone()
	m.shopOrder = append(m.shopOrder, s.ID)
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	s, ok := m.shopsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := s.Clone()
	return &cp, nil
}

func (m *MemoryStore) Update(ctx context.Context, s *domain.Shop) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.shopsByID[s.ID]; !ok {
		return ErrNotFound
	}
	m.shopsByID[s.ID] = s.Clone()
	return nil
}

// List returns shops in registration order.
func (m *MemoryStore) List(ctx context.Context, f ShopFilter) ([]domain.Shop, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Shop, 0, len(m.shopOrder))
	for _, id := range m.shopOrder {
		s := m.shopsByID[id]
		if !f.match(s) {
			continue
		}
		out = append(out, s.Clone())
	}
	return out, nil
}

// OrderRepository implementation on wrapper type
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (mo *MemoryOrders) Create(ctx context.Context, o *domain.Order) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if _, ok := mo.store.orders[o.ID]; ok {
		return fmt.Errorf("order %s: %w", o.ID, ErrAlreadyExists)
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = mo.store.now()
	}
	mo.store.orderSeq++
	mo.store.orders[o.ID] = storedOrder{order: o.Clone(), seq: mo.store.orderSeq}
	return nil
}

func (mo *MemoryOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	so, ok := mo.store.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := so.order.Clone()
	return &cp, nil
}

// Update replaces the stored order. Only the status is expected to change.
func (mo *MemoryOrders) Update(ctx context.Context, o *domain.Order) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	so, ok := mo.store.orders[o.ID]
	if !ok {
		return ErrNotFound
	}
	so.order = o.Clone()
	mo.store.orders[o.ID] = so
	return nil
}

// List sorts by order date at read time, newest first; equal dates fall back to insertion order.
func (mo *MemoryOrders) List(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	matched := make([]storedOrder, 0)
	for _, so := range mo.store.orders {
		if f.match(so.order) {
			matched = append(matched, so)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.order.OrderDate.Equal(b.order.OrderDate) {
			return a.order.OrderDate.After(b.order.OrderDate)
		}
		return a.seq > b.seq
	})
	out := make([]domain.Order, len(matched))
	for i, so := range matched {
		out[i] = so.order.Clone()
	}
	return out, nil
}

// CartRepository implementation
type MemoryCarts struct{ store *MemoryStore }

func NewMemoryCarts(store *MemoryStore) *MemoryCarts { return &MemoryCarts{store: store} }

var _ CartRepository = (*MemoryCarts)(nil)

func (mc *MemoryCarts) Create(ctx context.Context, c *cart.Cart) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, ok := mc.store.carts[c.ID]; ok {
		return fmt.Errorf("cart %s: %w", c.ID, ErrAlreadyExists)
	}
	mc.store.carts[c.ID] = c.Clone()
	return nil
}

func (mc *MemoryCarts) GetByID(ctx context.Context, id string) (*cart.Cart, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	c, ok := mc.store.carts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c.Clone()
	return &cp, nil
}

func (mc *MemoryCarts) Update(ctx context.Context, c *cart.Cart) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	if _, ok := mc.store.carts[c.ID]; !ok {
		return ErrNotFound
	}
	mc.store.carts[c.ID] = c.Clone()
	return nil
}

func (mc *MemoryCarts) Delete(ctx context.Context, id string) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	if _, ok := mc.store.carts[id]; !ok {
		return ErrNotFound
	}
	delete(mc.store.carts, id)
	return nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

// WithTransaction runs fn under the store's write lock. Writes done by fn before it
// returns an error are not rolled back, so fn must validate before it mutates.
func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if isTx(ctx) {
		return fn(ctx)
	}
	// Для in-memory используем блокировку записи и помечаем контекст, чтобы репозитории пропускали внутренние локи
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
