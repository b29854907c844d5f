package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/ridloal/product-dashboard-api/internal/catalog/domain"
	"github.com/ridloal/product-dashboard-api/internal/platform/logger"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

const pqForeignKeyViolation = "23503"

// ListFilter narrows ListProducts/CountProducts to a search term and/or a
// category. Both filters are conjunctive when set.
type ListFilter struct {
	SearchTerm string
	CategoryID *int64
}

type CatalogRepository interface {
	ListProducts(ctx context.Context, filter ListFilter, offset, limit int) ([]domain.Product, error)
	CountProducts(ctx context.Context, filter ListFilter) (int, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type postgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) CatalogRepository {
	return &postgresCatalogRepository{db: db}
}

const productColumns = `p.id, p.name, p.description, p.price, p.image_url, p.category_id, c.name, p.in_stock, p.created_date`

// filterClause builds the WHERE fragment for a ListFilter. Placeholders start
// at $1; args line up with the returned fragment.
func filterClause(filter ListFilter) (string, []interface{}) {
	clause := ""
	args := []interface{}{}
	if filter.SearchTerm != "" {
		args = append(args, "%"+filter.SearchTerm+"%")
		clause += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		clause += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}
	return clause, args
}

func (r *postgresCatalogRepository) ListProducts(ctx context.Context, filter ListFilter, offset, limit int) ([]domain.Product, error) {
	clause, args := filterClause(filter)
	// id ASC as tie-break keeps pagination stable when created_date collides.
	query := fmt.Sprintf(`SELECT %s FROM products p
              LEFT JOIN categories c ON c.id = p.category_id
              WHERE 1=1%s
              ORDER BY p.created_date DESC, p.id ASC
              OFFSET $%d LIMIT $%d`, productColumns, clause, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryID, &p.CategoryName, &p.InStock, &p.CreatedDate); err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListProducts: rows iteration error", err)
		return nil, err
	}
	return products, nil
}

func (r *postgresCatalogRepository) CountProducts(ctx context.Context, filter ListFilter) (int, error) {
	clause, args := filterClause(filter)
	query := `SELECT COUNT(*) FROM products p WHERE 1=1` + clause

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.Error("CountProducts: query failed", err)
		return 0, err
	}
	return count, nil
}

func (r *postgresCatalogRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products p
              LEFT JOIN categories c ON c.id = p.category_id
              WHERE p.id = $1`, productColumns)

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryID, &p.CategoryName, &p.InStock, &p.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProductByID: query failed", err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresCatalogRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	query := `INSERT INTO products (name, description, price, image_url, category_id, in_stock, created_date)
              VALUES ($1, $2, $3, $4, $5, $6, NOW())
              RETURNING id, created_date`

	err := r.db.QueryRowContext(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL, product.CategoryID, product.InStock,
	).Scan(&product.ID, &product.CreatedDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCategoryNotFound
		}
		logger.Error("CreateProduct: insert failed", err)
		return err
	}
	return nil
}

func (r *postgresCatalogRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	query := `UPDATE products
              SET name = $1, description = $2, price = $3, image_url = $4, category_id = $5, in_stock = $6
              WHERE id = $7`

	res, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL, product.CategoryID, product.InStock, product.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCategoryNotFound
		}
		logger.Error("UpdateProduct: exec failed", err)
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *postgresCatalogRepository) DeleteProduct(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		logger.Error("DeleteProduct: exec failed", err)
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *postgresCatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name, description FROM categories ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListCategories: query failed", err)
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			logger.Error("ListCategories: scan failed", err)
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// isForeignKeyViolation covers both drivers: pgx (the pool driver) and lib/pq
// (used by the migration tooling).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pqForeignKeyViolation {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqForeignKeyViolation
}
