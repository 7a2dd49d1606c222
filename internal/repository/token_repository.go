package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const createSessionTable = `
	CREATE TABLE IF NOT EXISTS admin_session (
		key        TEXT PRIMARY KEY,
		token      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// postgresTokenRepository implements TokenRepository using PostgreSQL.
type postgresTokenRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresTokenRepository creates a PostgreSQL-backed token repository.
func NewPostgresTokenRepository(pool *pgxpool.Pool, logger zerolog.Logger) TokenRepository {
	return &postgresTokenRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "token").Logger(),
	}
}

// EnsureSchema creates the admin_session table if it does not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createSessionTable); err != nil {
		return fmt.Errorf("failed to create admin_session table: %w", err)
	}
	return nil
}

// Get returns the token stored under key.
func (r *postgresTokenRepository) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT token FROM admin_session WHERE key = $1`

	var token string
	err := r.pool.QueryRow(ctx, query, key).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("key", key).Msg("no stored token")
			return "", nil
		}
		r.logger.Error().Err(err).Str("key", key).Msg("failed to query token")
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// Set upserts the token stored under key.
func (r *postgresTokenRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO admin_session (key, token, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET token = EXCLUDED.token, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.pool.Exec(ctx, query, key, value); err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to store token")
		return fmt.Errorf("failed to set token: %w", err)
	}

	r.logger.Debug().Str("key", key).Msg("token stored")
	return nil
}

// Delete removes the token stored under key.
func (r *postgresTokenRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM admin_session WHERE key = $1`

	if _, err := r.pool.Exec(ctx, query, key); err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to delete token")
		return fmt.Errorf("failed to delete token: %w", err)
	}

	return nil
}
