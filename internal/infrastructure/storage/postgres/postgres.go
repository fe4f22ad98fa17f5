package postgres

import (
	"context"
	"fmt"

	"qrvault/internal/config"
	"qrvault/internal/infrastructure/migration"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage owns the pgx connection pool. It is constructed once at startup
// and injected into the repositories; Close releases the pool.
type Storage struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
