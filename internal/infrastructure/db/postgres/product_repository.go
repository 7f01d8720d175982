package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	created := *p
	err := r.pool.QueryRow(ctx,
		`INSERT INTO products (name, price, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		p.Name, p.Price, p.UserID,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &created, nil
}

func (r *ProductRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, price, user_id FROM products WHERE user_id = $1`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.UserID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Delete removes the product only when it belongs to ownerID. Both a
// missing row and someone else's row affect zero rows and surface as the
// same not-found error, so nothing leaks about other tenants.
func (r *ProductRepository) Delete(ctx context.Context, ownerID, productID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM products WHERE id = $1 AND user_id = $2`,
		productID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
