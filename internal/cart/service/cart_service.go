package service

import (
	"context"
	"errors"

	"github.com/ridloal/product-dashboard-api/internal/cart/cache"
	"github.com/ridloal/product-dashboard-api/internal/cart/domain"
	"github.com/ridloal/product-dashboard-api/internal/cart/repository"
	catalogDomain "github.com/ridloal/product-dashboard-api/internal/catalog/domain"
	"github.com/ridloal/product-dashboard-api/internal/platform/logger"
	"github.com/shopspring/decimal"
)

// Fixed 10% rate applied to the subtotal. No per-category rules.
var taxRate = decimal.RequireFromString("0.10")

// ProductGetter is the slice of the catalog the cart needs: price snapshots
// and names for messages. Satisfied by catalog/repository.CatalogRepository.
type ProductGetter interface {
	GetProductByID(ctx context.Context, id int64) (*catalogDomain.Product, error)
}

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*domain.CartView, error)
	AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.CartActionResult, error)
	UpdateItem(ctx context.Context, sessionID string, itemID int64, quantity int) (*domain.CartActionResult, error)
	RemoveItem(ctx context.Context, sessionID string, itemID int64) (*domain.CartActionResult, error)
	ClearCart(ctx context.Context, sessionID string) (*domain.CartActionResult, error)
}

type cartServiceImpl struct {
	repo     repository.CartRepository
	products ProductGetter
	views    cache.CartCache // nil disables caching
}

func NewCartService(repo repository.CartRepository, products ProductGetter, views cache.CartCache) CartService {
	return &cartServiceImpl{
		repo:     repo,
		products: products,
		views:    views,
	}
}

// buildView fills derived fields: per-item totals, subtotal, 10% tax rounded
// to cents, grand total and item count.
func buildView(items []domain.CartItem) *domain.CartView {
	subtotal := decimal.Zero
	totalItems := 0
	for i := range items {
		items[i].TotalPrice = items[i].UnitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
		subtotal = subtotal.Add(items[i].TotalPrice)
		totalItems += items[i].Quantity
	}
	tax := subtotal.Mul(taxRate).Round(2)

	return &domain.CartView{
		Items:      items,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      subtotal.Add(tax),
		TotalItems: totalItems,
	}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, sessionID string) (*domain.CartView, error) {
	if s.views != nil {
		view, err := s.views.Get(ctx, sessionID)
		if err == nil {
			return view, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Error("GetCart: cache read failed", err)
		}
	}

	items, err := s.repo.ListItemsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := buildView(items)

	if s.views != nil {
		if err := s.views.Set(ctx, sessionID, view); err != nil {
			logger.Error("GetCart: cache write failed", err)
		}
	}
	return view, nil
}

func (s *cartServiceImpl) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.CartActionResult, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	item := &domain.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: product.Price,
	}
	if err := s.repo.UpsertItem(ctx, item); err != nil {
		return nil, err
	}

	return s.refresh(ctx, sessionID, product.Name+" added to cart")
}

func (s *cartServiceImpl) UpdateItem(ctx context.Context, sessionID string, itemID int64, quantity int) (*domain.CartActionResult, error) {
	// Quantity zero or below means removal, never a stored zero-quantity row.
	// The item must still belong to this session's cart.
	if quantity <= 0 {
		deleted, err := s.repo.DeleteItem(ctx, sessionID, itemID)
		if err != nil {
			return nil, err
		}
		if !deleted {
			return nil, repository.ErrCartItemNotFound
		}
		return s.refresh(ctx, sessionID, "Cart updated")
	}

	if err := s.repo.UpdateItemQuantity(ctx, sessionID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.refresh(ctx, sessionID, "Cart updated")
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, sessionID string, itemID int64) (*domain.CartActionResult, error) {
	// Idempotent: removing an absent item is a no-op.
	if _, err := s.repo.DeleteItem(ctx, sessionID, itemID); err != nil {
		return nil, err
	}
	return s.refresh(ctx, sessionID, "Item removed from cart")
}

func (s *cartServiceImpl) ClearCart(ctx context.Context, sessionID string) (*domain.CartActionResult, error) {
	if err := s.repo.ClearSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.refresh(ctx, sessionID, "Cart cleared")
}

// refresh invalidates the cached view and recomputes the aggregate after a
// mutation.
func (s *cartServiceImpl) refresh(ctx context.Context, sessionID, message string) (*domain.CartActionResult, error) {
	if s.views != nil {
		if err := s.views.Delete(ctx, sessionID); err != nil {
			logger.Error("refresh: cache invalidation failed", err)
		}
	}

	items, err := s.repo.ListItemsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := buildView(items)

	return &domain.CartActionResult{
		Success:    true,
		TotalItems: view.TotalItems,
		Subtotal:   view.Subtotal,
		Tax:        view.Tax,
		Total:      view.Total,
		Message:    message,
	}, nil
}
