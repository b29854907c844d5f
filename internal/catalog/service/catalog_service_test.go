package service

import (
	"context"
	"testing"

	"github.com/ridloal/product-dashboard-api/internal/catalog/domain"
	"github.com/ridloal/product-dashboard-api/internal/catalog/repository"
	"github.com/ridloal/product-dashboard-api/internal/catalog/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService(repo repository.CatalogRepository) CatalogService {
	return NewCatalogService(repo, 8, 100)
}

func TestCatalogService_ListProducts_Paging(t *testing.T) {
	ctx := context.TODO()

	t.Run("Defaults applied when page and pageSize are unset", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		service := newTestService(mockRepo)

		filter := repository.ListFilter{}
		mockRepo.On("CountProducts", ctx, filter).Return(17, nil).Once()
		mockRepo.On("ListProducts", ctx, filter, 0, 8).Return([]domain.Product{{ID: 1}}, nil).Once()

		resp, err := service.ListProducts(ctx, domain.ListProductsQuery{})
		assert.NoError(t, err)
		assert.Equal(t, 1, resp.CurrentPage)
		assert.Equal(t, 8, resp.PageSize)
		assert.Equal(t, 17, resp.TotalProducts)
		assert.Equal(t, 3, resp.TotalPages) // ceil(17/8)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Oversized pageSize is clamped to the maximum", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		service := newTestService(mockRepo)

		filter := repository.ListFilter{}
		mockRepo.On("CountProducts", ctx, filter).Return(0, nil).Once()
		mockRepo.On("ListProducts", ctx, filter, 0, 100).Return([]domain.Product{}, nil).Once()

		resp, err := service.ListProducts(ctx, domain.ListProductsQuery{Page: 1, PageSize: 1000})
		assert.NoError(t, err)
		assert.Equal(t, 100, resp.PageSize)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Negative page is treated as the first page", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		service := newTestService(mockRepo)

		filter := repository.ListFilter{}
		mockRepo.On("CountProducts", ctx, filter).Return(3, nil).Once()
		mockRepo.On("ListProducts", ctx, filter, 0, 8).Return([]domain.Product{{ID: 1}, {ID: 2}, {ID: 3}}, nil).Once()

		resp, err := service.ListProducts(ctx, domain.ListProductsQuery{Page: -2, PageSize: 8})
		assert.NoError(t, err)
		assert.Equal(t, 1, resp.CurrentPage)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty catalog yields zero totals and an empty product list", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		service := newTestService(mockRepo)

		filter := repository.ListFilter{}
		mockRepo.On("CountProducts", ctx, filter).Return(0, nil).Once()
		mockRepo.On("ListProducts", ctx, filter, 0, 8).Return([]domain.Product{}, nil).Once()

		resp, err := service.ListProducts(ctx, domain.ListProductsQuery{Page: 1})
		assert.NoError(t, err)
		assert.Empty(t, resp.Products)
		assert.Equal(t, 0, resp.TotalProducts)
		assert.Equal(t, 0, resp.TotalPages)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Filters are passed through conjunctively", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		service := newTestService(mockRepo)

		categoryID := int64(2)
		filter := repository.ListFilter{SearchTerm: "pizza", CategoryID: &categoryID}
		mockRepo.On("CountProducts", ctx, filter).Return(1, nil).Once()
		mockRepo.On("ListProducts", ctx, filter, 8, 8).Return([]domain.Product{}, nil).Once()

		resp, err := service.ListProducts(ctx, domain.ListProductsQuery{
			SearchTerm: "pizza",
			CategoryID: &categoryID,
			Page:       2,
			PageSize:   8,
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, resp.CurrentPage)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)
	service := newTestService(mockRepo)
	ctx := context.TODO()

	mockRepo.On("GetProductByID", ctx, int64(99)).Return(nil, repository.ErrProductNotFound).Once()

	product, err := service.GetProduct(ctx, 99)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.TODO()

	t.Run("Rejects non-positive price", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		service := newTestService(mockRepo)

		_, err := service.CreateProduct(ctx, domain.CreateProductRequest{
			Name:       "Free Lunch",
			Price:      decimal.Zero,
			CategoryID: 1,
		})
		assert.ErrorIs(t, err, ErrInvalidPrice)
		mockRepo.AssertExpectations(t) // repository untouched
	})

	t.Run("Rounds price and returns the stored row", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		service := newTestService(mockRepo)

		mockRepo.On("CreateProduct", ctx, mock.MatchedBy(func(p *domain.Product) bool {
			return p.Name == "Garlic Bread" && p.Price.StringFixed(2) == "4.99"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Product).ID = 7
		}).Return(nil).Once()
		mockRepo.On("GetProductByID", ctx, int64(7)).Return(&domain.Product{ID: 7, Name: "Garlic Bread"}, nil).Once()

		product, err := service.CreateProduct(ctx, domain.CreateProductRequest{
			Name:       "Garlic Bread",
			Price:      decimal.RequireFromString("4.989"),
			CategoryID: 1,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), product.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown category surfaces as not-found", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		service := newTestService(mockRepo)

		mockRepo.On("CreateProduct", ctx, mock.Anything).Return(repository.ErrCategoryNotFound).Once()

		_, err := service.CreateProduct(ctx, domain.CreateProductRequest{
			Name:       "Mystery Dish",
			Price:      decimal.RequireFromString("9.99"),
			CategoryID: 42,
		})
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_UpdateProduct_IDMismatch(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)
	service := newTestService(mockRepo)
	ctx := context.TODO()

	_, err := service.UpdateProduct(ctx, 5, domain.UpdateProductRequest{
		ID:         6,
		Name:       "Tiramisu",
		Price:      decimal.RequireFromString("6.49"),
		CategoryID: 3,
	})
	assert.ErrorIs(t, err, ErrProductIDMismatch)
	mockRepo.AssertExpectations(t) // no repository call on validation failure
}
