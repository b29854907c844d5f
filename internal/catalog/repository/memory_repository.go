package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ridloal/product-dashboard-api/internal/catalog/domain"
)

// MemoryCatalogRepository is an in-process CatalogRepository with the same
// filtering and ordering semantics as the postgres implementation. Used by
// tests and local experiments.
type MemoryCatalogRepository struct {
	mu         sync.RWMutex
	products   map[int64]domain.Product
	categories map[int64]domain.Category
	nextID     int64
}

func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		products:   map[int64]domain.Product{},
		categories: map[int64]domain.Category{},
		nextID:     1,
	}
}

func (r *MemoryCatalogRepository) AddCategory(category domain.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[category.ID] = category
}

func (r *MemoryCatalogRepository) matches(p domain.Product, filter ListFilter) bool {
	if filter.SearchTerm != "" {
		term := strings.ToLower(filter.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
		return false
	}
	return true
}

// filtered returns matching products ordered by created_date DESC, id ASC.
func (r *MemoryCatalogRepository) filtered(filter ListFilter) []domain.Product {
	result := []domain.Product{}
	for _, p := range r.products {
		if r.matches(p, filter) {
			result = append(result, r.withCategoryName(p))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedDate.Equal(result[j].CreatedDate) {
			return result[i].CreatedDate.After(result[j].CreatedDate)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func (r *MemoryCatalogRepository) withCategoryName(p domain.Product) domain.Product {
	if c, ok := r.categories[p.CategoryID]; ok {
		name := c.Name
		p.CategoryName = &name
	}
	return p
}

func (r *MemoryCatalogRepository) ListProducts(ctx context.Context, filter ListFilter, offset, limit int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.filtered(filter)
	if offset >= len(all) {
		return []domain.Product{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *MemoryCatalogRepository) CountProducts(ctx context.Context, filter ListFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.filtered(filter)), nil
}

func (r *MemoryCatalogRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p = r.withCategoryName(p)
	return &p, nil
}

func (r *MemoryCatalogRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[product.CategoryID]; !ok {
		return ErrCategoryNotFound
	}
	product.ID = r.nextID
	r.nextID++
	if product.CreatedDate.IsZero() {
		product.CreatedDate = time.Now()
	}
	r.products[product.ID] = *product
	return nil
}

func (r *MemoryCatalogRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return ErrProductNotFound
	}
	if _, ok := r.categories[product.CategoryID]; !ok {
		return ErrCategoryNotFound
	}
	product.CreatedDate = existing.CreatedDate
	r.products[product.ID] = *product
	return nil
}

func (r *MemoryCatalogRepository) DeleteProduct(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *MemoryCatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := []domain.Category{}
	for _, c := range r.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}
