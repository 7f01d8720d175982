package ports

import (
	"context"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
)

// SaleRepository defines persistence operations for sales.
type SaleRepository interface {
	// Create persists the sale header and all of its items as one atomic
	// unit: either every row becomes visible together or none does. On
	// success the sale's ID, CreatedAt and item IDs are filled in.
	Create(ctx context.Context, sale *domain.Sale) error
	// ListByOwner returns the owner's sales newest-first, each with its
	// items eagerly loaded.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Sale, error)
}
