package ports

import (
	"context"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
)

// CatalogService defines use-case operations over a user's private catalog.
type CatalogService interface {
	List(ctx context.Context, ownerID int64) ([]domain.Product, error)
	Create(ctx context.Context, ownerID int64, name string, price float64) (*domain.Product, error)
	Delete(ctx context.Context, ownerID, productID int64) error
}
