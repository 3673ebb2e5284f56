package postgres

import (
	"context"
	"errors"
	"fmt"

	"auction-marketplace/internal/auctionerrors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool connects a pgx connection pool and verifies it with a ping.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w: %v", auctionerrors.ErrStorageUnavailable, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: %w: ping failed: %v", auctionerrors.ErrStorageUnavailable, err)
	}

	return pool, nil
}

// Postgres error codes used to classify constraint violations
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// classify maps low-level pgx errors onto the repository error taxonomy.
// Constraint names come from the schema in migrations/sql.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			if pgErr.ConstraintName == "users_email_key" {
				return fmt.Errorf("%w: %s", auctionerrors.ErrDuplicateEmail, pgErr.Detail)
			}
		case codeForeignKeyViolation:
			switch pgErr.ConstraintName {
			case "items_seller_id_fkey":
				return fmt.Errorf("%w: %s", auctionerrors.ErrUnknownSeller, pgErr.Detail)
			case "bids_item_id_fkey":
				return fmt.Errorf("%w: %s", auctionerrors.ErrUnknownItem, pgErr.Detail)
			case "bids_buyer_id_fkey":
				return fmt.Errorf("%w: %s", auctionerrors.ErrUnknownBuyer, pgErr.Detail)
			}
		}
		return err
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return fmt.Errorf("%w: %v", auctionerrors.ErrStorageUnavailable, err)
	}

	return err
}
