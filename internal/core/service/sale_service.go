package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/api/metrics"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/ports"
)

// SaleService implements the sale recording workflow: validate the cart,
// compute the total, and persist header plus items as one atomic unit.
type SaleService struct {
	repo   ports.SaleRepository
	logger zerolog.Logger
}

func NewSaleService(repo ports.SaleRepository, logger zerolog.Logger) *SaleService {
	return &SaleService{repo: repo, logger: logger}
}

// Create records a sale for the owner. Prices and quantities are taken
// from the cart verbatim; sale items are point-in-time snapshots and are
// never re-checked against the live catalog.
func (s *SaleService) Create(ctx context.Context, ownerID int64, items []ports.CartItemInput) (*domain.Sale, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var total float64
	saleItems := make([]domain.SaleItem, 0, len(items))
	for _, item := range items {
		if !validItem(item) {
			return nil, domain.ErrInvalidItem
		}
		total += item.Price * float64(item.Quantity)
		saleItems = append(saleItems, domain.SaleItem{
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	sale := &domain.Sale{
		Total:     total,
		CreatedAt: time.Now().UTC(),
		UserID:    ownerID,
		Items:     saleItems,
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		s.logger.Error().Err(err).Int64("user_id", ownerID).Msg("failed to record sale")
		return nil, err
	}

	metrics.SalesCreatedTotal.Inc()
	metrics.SaleTotalAmount.Observe(sale.Total)
	s.logger.Info().
		Int64("sale_id", sale.ID).
		Int64("user_id", ownerID).
		Float64("total", sale.Total).
		Int("items", len(sale.Items)).
		Msg("sale recorded")

	return sale, nil
}

// List returns the owner's sales newest-first with items included.
func (s *SaleService) List(ctx context.Context, ownerID int64) ([]domain.Sale, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func validItem(item ports.CartItemInput) bool {
	if item.Name == "" || item.Quantity < 1 {
		return false
	}
	if item.Price < 0 || math.IsNaN(item.Price) || math.IsInf(item.Price, 0) {
		return false
	}
	return true
}
