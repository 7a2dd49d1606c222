package repository

import (
	"context"
)

// AuthTokenKey is the key the admin bearer token is stored under.
const AuthTokenKey = "authToken"

// TokenRepository persists small keyed secrets for the admin session.
type TokenRepository interface {
	// Get returns the value stored under key, or "" when there is none.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
