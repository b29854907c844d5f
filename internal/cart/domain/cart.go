package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one row of a session's cart. Product name and image are joined
// in for display; UnitPrice is the catalog price snapshotted when the item
// was first added.
type CartItem struct {
	ID              int64           `json:"id"`
	SessionID       string          `json:"-"`
	ProductID       int64           `json:"productId"`
	ProductName     string          `json:"productName"`
	ProductImageURL string          `json:"productImageUrl"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	AddedDate       time.Time       `json:"addedDate"`
}

// CartView is the derived aggregate for one session. Never persisted.
type CartView struct {
	Items      []CartItem      `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	TotalItems int             `json:"totalItems"`
}

// CartActionResult reports the refreshed aggregate after a mutating cart
// operation so callers do not need a follow-up fetch.
type CartActionResult struct {
	Success    bool            `json:"success"`
	TotalItems int             `json:"totalItems"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	Message    string          `json:"message"`
}

type AddToCartRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

type UpdateCartItemRequest struct {
	// Zero and negative values remove the item.
	Quantity int `json:"quantity"`
}
