package ports

import (
	"context"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
// Every method takes the owner's user ID and must scope its query by it;
// the repository never trusts a client-supplied owner.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Product, error)
	// Delete removes the product only when it belongs to ownerID. A missing
	// row and a row owned by someone else both return ErrProductNotFound so
	// the outcome leaks nothing about other tenants' data.
	Delete(ctx context.Context, ownerID, productID int64) error
}
