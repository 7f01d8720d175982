package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a PostgreSQL
// connection pool.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect establishes a pgx connection pool and verifies connectivity with
// a ping. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.New(connectCtx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return pool, nil
}

// Migrate creates the four tables if they do not exist. Foreign keys are
// explicit columns. sale_items has no product reference: items snapshot
// name and price at the moment of sale.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			username      TEXT        UNIQUE NOT NULL,
			password_hash TEXT        NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS products (
			id      BIGSERIAL PRIMARY KEY,
			name    TEXT             NOT NULL,
			price   DOUBLE PRECISION NOT NULL,
			user_id BIGINT           NOT NULL REFERENCES users(id)
		);

		CREATE TABLE IF NOT EXISTS sales (
			id         BIGSERIAL PRIMARY KEY,
			total      DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ      NOT NULL,
			user_id    BIGINT           NOT NULL REFERENCES users(id)
		);

		CREATE TABLE IF NOT EXISTS sale_items (
			id           BIGSERIAL PRIMARY KEY,
			sale_id      BIGINT           NOT NULL REFERENCES sales(id),
			product_name TEXT             NOT NULL,
			quantity     INT              NOT NULL,
			price        DOUBLE PRECISION NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_products_user_id  ON products(user_id);
		CREATE INDEX IF NOT EXISTS idx_sales_user_id     ON sales(user_id);
		CREATE INDEX IF NOT EXISTS idx_sale_items_sale_id ON sale_items(sale_id);
	`)
	if err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}
	return nil
}
