package cache

import (
	"context"
	"errors"

	"github.com/ridloal/product-dashboard-api/internal/cart/domain"
)

// CartCache holds computed cart views keyed by session id. Entries are
// invalidated on every cart mutation, so a hit is always current.
type CartCache interface {
	Get(ctx context.Context, sessionID string) (*domain.CartView, error)
	Set(ctx context.Context, sessionID string, view *domain.CartView) error
	Delete(ctx context.Context, sessionID string) error
}

var ErrCacheMiss = errors.New("cache miss")
