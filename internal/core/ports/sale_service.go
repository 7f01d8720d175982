package ports

import (
	"context"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
)

// CartItemInput is one line of a cart as submitted by the client. Price and
// quantity are taken verbatim: sale items are point-in-time snapshots and
// are never re-priced against the live catalog.
type CartItemInput struct {
	Name     string
	Price    float64
	Quantity int
}

// SaleService defines the sale recording use cases.
type SaleService interface {
	Create(ctx context.Context, ownerID int64, items []CartItemInput) (*domain.Sale, error)
	List(ctx context.Context, ownerID int64) ([]domain.Sale, error)
}
