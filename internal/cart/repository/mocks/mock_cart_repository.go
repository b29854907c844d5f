package mocks

import (
	"context"
	"time"

	cartDomain "github.com/ridloal/product-dashboard-api/internal/cart/domain"

	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) ListItemsBySession(ctx context.Context, sessionID string) ([]cartDomain.CartItem, error) {
	args := m.Called(ctx, sessionID)
	if res := args.Get(0); res != nil {
		return res.([]cartDomain.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) UpsertItem(ctx context.Context, item *cartDomain.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateItemQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) error {
	args := m.Called(ctx, sessionID, itemID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(ctx context.Context, sessionID string, itemID int64) (bool, error) {
	args := m.Called(ctx, sessionID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) ClearSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItemsAddedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
