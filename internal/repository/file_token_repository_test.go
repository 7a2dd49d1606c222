package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	repo := NewFileTokenRepository(path, zerolog.Nop())

	// Missing file reads as empty
	token, err := repo.Get(ctx, AuthTokenKey)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, repo.Set(ctx, AuthTokenKey, "abc"))
	token, err = repo.Get(ctx, AuthTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"authToken":"abc"}`, string(data))

	// A second repository on the same file sees the stored value
	other := NewFileTokenRepository(path, zerolog.Nop())
	token, err = other.Get(ctx, AuthTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, repo.Set(ctx, AuthTokenKey, "def"))
	token, _ = repo.Get(ctx, AuthTokenKey)
	assert.Equal(t, "def", token)

	require.NoError(t, repo.Delete(ctx, AuthTokenKey))
	token, err = repo.Get(ctx, AuthTokenKey)
	require.NoError(t, err)
	assert.Empty(t, token)

	// Deleting again is a no-op
	assert.NoError(t, repo.Delete(ctx, AuthTokenKey))
}

func TestFileTokenRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	repo := NewFileTokenRepository(path, zerolog.Nop())
	_, err := repo.Get(context.Background(), AuthTokenKey)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token file")
}

func TestFileTokenRepository_CancelledContext(t *testing.T) {
	repo := NewFileTokenRepository(filepath.Join(t.TempDir(), "s.json"), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Set(ctx, AuthTokenKey, "x"), context.Canceled)
	_, err := repo.Get(ctx, AuthTokenKey)
	assert.ErrorIs(t, err, context.Canceled)
}
