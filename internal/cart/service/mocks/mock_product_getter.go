package mocks

import (
	"context"

	catalogDomain "github.com/ridloal/product-dashboard-api/internal/catalog/domain"

	"github.com/stretchr/testify/mock"
)

type MockProductGetter struct {
	mock.Mock
}

func (m *MockProductGetter) GetProductByID(ctx context.Context, id int64) (*catalogDomain.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*catalogDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
