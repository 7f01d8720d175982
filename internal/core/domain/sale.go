package domain

import (
	"errors"
	"time"
)

var ErrEmptyCart = errors.New("cart is empty")
var ErrInvalidItem = errors.New("invalid sale item")
var ErrSaleNotFound = errors.New("sale not found")

// Sale is the transactional aggregate: a header plus its line items,
// persisted atomically. A sale is either fully visible or absent; it has
// no other lifecycle and is never updated or deleted.
type Sale struct {
	ID        int64      `json:"id"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
	UserID    int64      `json:"-"`
	Items     []SaleItem `json:"items"`
}

// SaleItem is a denormalized snapshot of a product at the moment of sale.
// It deliberately stores the product name and unit price instead of a
// product ID, so later catalog edits never rewrite sale history.
type SaleItem struct {
	ID          int64   `json:"-"`
	SaleID      int64   `json:"-"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}
