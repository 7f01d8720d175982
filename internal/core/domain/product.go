package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidProduct = errors.New("invalid product")

// Product is a catalog entry owned by a single user. Products carry no
// stock count and are never updated in place; they exist so the point of
// sale can offer them, and sale items snapshot their name and price at
// the moment of sale.
type Product struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	UserID int64   `json:"-"`
}
