package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ridloal/product-dashboard-api/internal/cart/domain"
)

// MemoryCartRepository mirrors the postgres implementation's semantics
// in-process, including the add-or-increment upsert. Used by tests.
type MemoryCartRepository struct {
	mu     sync.Mutex
	items  map[int64]domain.CartItem
	nextID int64
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{items: map[int64]domain.CartItem{}, nextID: 1}
}

func (r *MemoryCartRepository) ListItemsBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := []domain.CartItem{}
	for _, item := range r.items {
		if item.SessionID == sessionID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].AddedDate.Equal(items[j].AddedDate) {
			return items[i].AddedDate.Before(items[j].AddedDate)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *MemoryCartRepository) UpsertItem(ctx context.Context, item *domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.items {
		if existing.SessionID == item.SessionID && existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			r.items[id] = existing
			*item = existing
			return nil
		}
	}

	item.ID = r.nextID
	r.nextID++
	if item.AddedDate.IsZero() {
		item.AddedDate = time.Now()
	}
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryCartRepository) UpdateItemQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok || item.SessionID != sessionID {
		return ErrCartItemNotFound
	}
	item.Quantity = quantity
	r.items[itemID] = item
	return nil
}

func (r *MemoryCartRepository) DeleteItem(ctx context.Context, sessionID string, itemID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok || item.SessionID != sessionID {
		return false, nil
	}
	delete(r.items, itemID)
	return true, nil
}

func (r *MemoryCartRepository) ClearSession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.SessionID == sessionID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *MemoryCartRepository) DeleteItemsAddedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, item := range r.items {
		if item.AddedDate.Before(cutoff) {
			delete(r.items, id)
			deleted++
		}
	}
	return deleted, nil
}
