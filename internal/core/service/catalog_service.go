package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/api/metrics"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/ports"
)

// ProductCache abstracts the per-owner catalog cache (Redis). The cache is
// an optimisation only: every failure is tolerated and logged, never
// surfaced to the caller.
type ProductCache interface {
	Get(ctx context.Context, ownerID int64) ([]domain.Product, bool, error)
	Set(ctx context.Context, ownerID int64, products []domain.Product) error
	Invalidate(ctx context.Context, ownerID int64) error
}

// CatalogService implements CRUD over a user's private product catalog.
type CatalogService struct {
	repo   ports.ProductRepository
	cache  ProductCache // may be nil when Redis is not configured
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, cache ProductCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

// List returns the owner's products, read through the cache when one is
// configured.
func (s *CatalogService) List(ctx context.Context, ownerID int64) ([]domain.Product, error) {
	if s.cache != nil {
		products, hit, err := s.cache.Get(ctx, ownerID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("user_id", ownerID).Msg("catalog cache read failed, falling back to repository")
		} else if hit {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return products, nil
		} else {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	products, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, ownerID, products); err != nil {
			s.logger.Warn().Err(err).Int64("user_id", ownerID).Msg("catalog cache write failed")
		}
	}
	return products, nil
}

// Create validates and persists a new product for the owner. Duplicate
// names are allowed; the price must be a finite non-negative number.
func (s *CatalogService) Create(ctx context.Context, ownerID int64, name string, price float64) (*domain.Product, error) {
	if name == "" || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, domain.ErrInvalidProduct
	}

	product, err := s.repo.Create(ctx, &domain.Product{
		Name:   name,
		Price:  price,
		UserID: ownerID,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", ownerID).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.invalidate(ctx, ownerID)
	s.logger.Info().Int64("product_id", product.ID).Int64("user_id", ownerID).Msg("product created")
	return product, nil
}

// Delete removes the owner's product. A missing row and another user's row
// are indistinguishable: both yield ErrProductNotFound.
func (s *CatalogService) Delete(ctx context.Context, ownerID, productID int64) error {
	if err := s.repo.Delete(ctx, ownerID, productID); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID)
	s.logger.Info().Int64("product_id", productID).Int64("user_id", ownerID).Msg("product deleted")
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, ownerID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", ownerID).Msg("catalog cache invalidation failed")
	}
}
