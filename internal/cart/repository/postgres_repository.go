package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ridloal/product-dashboard-api/internal/cart/domain"
	"github.com/ridloal/product-dashboard-api/internal/platform/logger"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartRepository interface {
	ListItemsBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	// UpsertItem adds the item, or increments quantity when the session
	// already holds the product. The stored unit price is never overwritten
	// by the upsert. Atomic, so concurrent adds merge instead of racing.
	UpsertItem(ctx context.Context, item *domain.CartItem) error
	UpdateItemQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) error
	// DeleteItem reports whether a row was actually removed; deleting a
	// missing item is not an error.
	DeleteItem(ctx context.Context, sessionID string, itemID int64) (bool, error)
	ClearSession(ctx context.Context, sessionID string) error
	DeleteItemsAddedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type postgresCartRepository struct {
	db *sql.DB
}

func NewPostgresCartRepository(db *sql.DB) CartRepository {
	return &postgresCartRepository{db: db}
}

func (r *postgresCartRepository) ListItemsBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	query := `SELECT ci.id, ci.session_id, ci.product_id, COALESCE(p.name, ''), COALESCE(p.image_url, ''),
                     ci.quantity, ci.unit_price, ci.added_date
              FROM cart_items ci
              LEFT JOIN products p ON p.id = ci.product_id
              WHERE ci.session_id = $1
              ORDER BY ci.added_date ASC, ci.id ASC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		logger.Error("ListItemsBySession: query failed", err)
		return nil, err
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.SessionID, &item.ProductID, &item.ProductName, &item.ProductImageURL,
			&item.Quantity, &item.UnitPrice, &item.AddedDate); err != nil {
			logger.Error("ListItemsBySession: scan failed", err)
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresCartRepository) UpsertItem(ctx context.Context, item *domain.CartItem) error {
	query := `INSERT INTO cart_items (session_id, product_id, quantity, unit_price, added_date)
              VALUES ($1, $2, $3, $4, NOW())
              ON CONFLICT (session_id, product_id)
              DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
              RETURNING id, quantity, unit_price, added_date`

	err := r.db.QueryRowContext(ctx, query, item.SessionID, item.ProductID, item.Quantity, item.UnitPrice).
		Scan(&item.ID, &item.Quantity, &item.UnitPrice, &item.AddedDate)
	if err != nil {
		logger.Error("UpsertItem: upsert failed", err)
		return err
	}
	return nil
}

func (r *postgresCartRepository) UpdateItemQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) error {
	query := `UPDATE cart_items SET quantity = $1 WHERE id = $2 AND session_id = $3`
	res, err := r.db.ExecContext(ctx, query, quantity, itemID, sessionID)
	if err != nil {
		logger.Error("UpdateItemQuantity: exec failed", err)
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *postgresCartRepository) DeleteItem(ctx context.Context, sessionID string, itemID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1 AND session_id = $2`, itemID, sessionID)
	if err != nil {
		logger.Error("DeleteItem: exec failed", err)
		return false, err
	}
	rowsAffected, _ := res.RowsAffected()
	return rowsAffected > 0, nil
}

func (r *postgresCartRepository) ClearSession(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID); err != nil {
		logger.Error("ClearSession: exec failed", err)
		return err
	}
	return nil
}

func (r *postgresCartRepository) DeleteItemsAddedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE added_date < $1`, cutoff)
	if err != nil {
		logger.Error("DeleteItemsAddedBefore: exec failed", err)
		return 0, err
	}
	deleted, _ := res.RowsAffected()
	return deleted, nil
}
