package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"imageUrl"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName *string         `json:"categoryName"`
	InStock      bool            `json:"inStock"`
	CreatedDate  time.Time       `json:"createdDate"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListProductsQuery carries the normalized filter/paging parameters for a
// product listing. Page is 1-based.
type ListProductsQuery struct {
	SearchTerm string
	CategoryID *int64
	Page       int
	PageSize   int
}

type ProductListResponse struct {
	Products      []Product `json:"products"`
	CurrentPage   int       `json:"currentPage"`
	TotalProducts int       `json:"totalProducts"`
	TotalPages    int       `json:"totalPages"`
	PageSize      int       `json:"pageSize"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Description string          `json:"description" binding:"max=500"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"imageUrl"`
	CategoryID  int64           `json:"categoryId" binding:"required"`
	InStock     bool            `json:"inStock"`
}

// UpdateProductRequest replaces the whole product row. The ID must match the
// id in the request path.
type UpdateProductRequest struct {
	ID          int64           `json:"id" binding:"required"`
	Name        string          `json:"name" binding:"required,max=100"`
	Description string          `json:"description" binding:"max=500"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"imageUrl"`
	CategoryID  int64           `json:"categoryId" binding:"required"`
	InStock     bool            `json:"inStock"`
}
