package mocks

import (
	"context"

	cDomain "github.com/ridloal/product-dashboard-api/internal/catalog/domain"
	"github.com/ridloal/product-dashboard-api/internal/catalog/repository"

	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, filter repository.ListFilter, offset, limit int) ([]cDomain.Product, error) {
	args := m.Called(ctx, filter, offset, limit)
	if res := args.Get(0); res != nil {
		return res.([]cDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) CountProducts(ctx context.Context, filter repository.ListFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogRepository) GetProductByID(ctx context.Context, id int64) (*cDomain.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*cDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) CreateProduct(ctx context.Context, product *cDomain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateProduct(ctx context.Context, product *cDomain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]cDomain.Category, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]cDomain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}
