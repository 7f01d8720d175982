package ports

import (
	"context"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID resolves a token subject back to a live account. The access
	// gate calls this on every authenticated request.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
