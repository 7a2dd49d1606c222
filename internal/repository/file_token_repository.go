package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// fileTokenRepository implements TokenRepository with a JSON document on
// disk, e.g. {"authToken": "..."}.
type fileTokenRepository struct {
	mu     sync.Mutex
	path   string
	logger zerolog.Logger
}

// NewFileTokenRepository creates a file-backed token repository.
func NewFileTokenRepository(path string, logger zerolog.Logger) TokenRepository {
	return &fileTokenRepository{
		path:   path,
		logger: logger.With().Str("repository", "file-token").Str("path", path).Logger(),
	}
}

// Get returns the value stored under key.
func (r *fileTokenRepository) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Set stores value under key.
func (r *fileTokenRepository) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return err
	}
	values[key] = value
	return r.write(values)
}

// Delete removes key.
func (r *fileTokenRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return r.write(values)
}

func (r *fileTokenRepository) read() (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read token file")
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		r.logger.Error().Err(err).Msg("token file is corrupt")
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return values, nil
}

// write replaces the file atomically via a temp file and rename.
func (r *fileTokenRepository) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token file: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp token file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close token file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		r.logger.Error().Err(err).Msg("failed to replace token file")
		return fmt.Errorf("failed to replace token file: %w", err)
	}
	return nil
}
