package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
)

type SaleRepository struct {
	pool *pgxpool.Pool
}

func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{pool: pool}
}

// Create persists the sale header and every item inside one transaction.
// The commit happens only after all inserts succeed; any failure rolls the
// whole sale back, so a partially written sale is never observable.
func (r *SaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin sale tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO sales (total, created_at, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		sale.Total, sale.CreatedAt, sale.UserID,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	for i := range sale.Items {
		item := &sale.Items[i]
		item.SaleID = sale.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO sale_items (sale_id, product_name, quantity, price)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			item.SaleID, item.ProductName, item.Quantity, item.Price,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit sale tx: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's sales newest-first. Items are fetched
// eagerly with one explicit second query covering all returned sales.
func (r *SaleRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Sale, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, total, created_at, user_id
		 FROM sales
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	index := map[int64]int{}
	ids := []int64{}
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.Total, &s.CreatedAt, &s.UserID); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.Items = []domain.SaleItem{}
		index[s.ID] = len(sales)
		ids = append(ids, s.ID)
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	if len(sales) == 0 {
		return sales, nil
	}

	itemRows, err := r.pool.Query(ctx,
		`SELECT id, sale_id, product_name, quantity, price
		 FROM sale_items
		 WHERE sale_id = ANY($1)
		 ORDER BY id`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.SaleItem
		if err := itemRows.Scan(&item.ID, &item.SaleID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		if i, ok := index[item.SaleID]; ok {
			sales[i].Items = append(sales[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	return sales, nil
}
