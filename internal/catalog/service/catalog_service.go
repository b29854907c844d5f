package service

import (
	"context"
	"errors"

	"github.com/ridloal/product-dashboard-api/internal/catalog/domain"
	"github.com/ridloal/product-dashboard-api/internal/catalog/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice      = errors.New("product price must be greater than zero")
	ErrProductIDMismatch = errors.New("product id in payload does not match request path")
)

type CatalogService interface {
	ListProducts(ctx context.Context, query domain.ListProductsQuery) (*domain.ProductListResponse, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, req domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type catalogServiceImpl struct {
	repo            repository.CatalogRepository
	defaultPageSize int
	maxPageSize     int
}

func NewCatalogService(repo repository.CatalogRepository, defaultPageSize, maxPageSize int) CatalogService {
	return &catalogServiceImpl{
		repo:            repo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// normalize clamps paging parameters instead of rejecting them: page < 1
// becomes 1, pageSize falls back to the configured default and is capped at
// the configured maximum.
func (s *catalogServiceImpl) normalize(query domain.ListProductsQuery) domain.ListProductsQuery {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = s.defaultPageSize
	}
	if query.PageSize > s.maxPageSize {
		query.PageSize = s.maxPageSize
	}
	return query
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, query domain.ListProductsQuery) (*domain.ProductListResponse, error) {
	query = s.normalize(query)
	filter := repository.ListFilter{SearchTerm: query.SearchTerm, CategoryID: query.CategoryID}

	totalProducts, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	offset := (query.Page - 1) * query.PageSize
	products, err := s.repo.ListProducts(ctx, filter, offset, query.PageSize)
	if err != nil {
		return nil, err
	}

	return &domain.ProductListResponse{
		Products:      products,
		CurrentPage:   query.Page,
		TotalProducts: totalProducts,
		TotalPages:    (totalProducts + query.PageSize - 1) / query.PageSize,
		PageSize:      query.PageSize,
	}, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	if !req.Price.GreaterThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.Round(2),
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		InStock:     req.InStock,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.GetProductByID(ctx, product.ID)
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, id int64, req domain.UpdateProductRequest) (*domain.Product, error) {
	if req.ID != id {
		return nil, ErrProductIDMismatch
	}
	if !req.Price.GreaterThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	product := &domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.Round(2),
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		InStock:     req.InStock,
	}
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.GetProductByID(ctx, id)
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}
