// Package database opens the PostgreSQL pool backing the session store.
package database

import (
	"context"
	"fmt"
	"time"

	"agrive-admin/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PoolOptions sizes a connection pool. The session store issues a handful
// of single-row queries, so the defaults are small.
type PoolOptions struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// DefaultPoolOptions returns the pool sizing used when none is configured.
func DefaultPoolOptions() PoolOptions {
	return PoolOptions{
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
		MaxConnIdleTime: 30 * time.Minute,
	}
}

// OptionsFromConfig derives pool sizing from the database configuration.
func OptionsFromConfig(cfg config.DatabaseConfig) PoolOptions {
	opts := DefaultPoolOptions()
	if cfg.MaxConnections > 0 {
		opts.MaxConns = int32(cfg.MaxConnections)
	}
	if cfg.MinConnections > 0 {
		opts.MinConns = int32(cfg.MinConnections)
	}
	if cfg.MaxConnLifetime > 0 {
		opts.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	}
	return opts
}

// NewPool creates a connection pool from the application configuration.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Msg("creating database connection pool")

	pool, err := Open(ctx, cfg.ConnectionString(), OptionsFromConfig(cfg))
	if err != nil {
		logger.Error().Err(err).Msg("database connection failed")
		return nil, err
	}

	logger.Info().Msg("database connection pool created successfully")
	return pool, nil
}

// Open creates a pool for connString and verifies it with a ping.
func Open(ctx context.Context, connString string, opts PoolOptions) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolConfig.MaxConns = opts.MaxConns
	poolConfig.MinConns = opts.MinConns
	poolConfig.MaxConnLifetime = opts.MaxConnLifetime
	poolConfig.MaxConnIdleTime = opts.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
