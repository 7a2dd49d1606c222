package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrive-admin/internal/model"
	"agrive-admin/internal/repository"

	"github.com/dgrijalva/jwt-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTokenRepository is a mock implementation of repository.TokenRepository.
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockTokenRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockTokenRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestNew_LoadsStoredToken(t *testing.T) {
	store := new(MockTokenRepository)
	store.On("Get", mock.Anything, repository.AuthTokenKey).Return("stored", nil).Once()

	s, err := New(context.Background(), store, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "stored", s.Token())

	// Token reads are served from memory.
	_ = s.Token()
	store.AssertExpectations(t)
}

func TestNew_StoreError(t *testing.T) {
	store := new(MockTokenRepository)
	store.On("Get", mock.Anything, repository.AuthTokenKey).Return("", errors.New("disk gone"))

	s, err := New(context.Background(), store, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "failed to load session")
}

func TestSession_LoginLogout(t *testing.T) {
	store := new(MockTokenRepository)
	store.On("Get", mock.Anything, repository.AuthTokenKey).Return("", nil)
	store.On("Set", mock.Anything, repository.AuthTokenKey, "new-token").Return(nil)
	store.On("Delete", mock.Anything, repository.AuthTokenKey).Return(nil)

	s, err := New(context.Background(), store, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, s.Authenticated())

	require.NoError(t, s.Login(context.Background(), "new-token"))
	assert.Equal(t, "new-token", s.Token())
	assert.True(t, s.Authenticated())

	require.NoError(t, s.Logout(context.Background()))
	assert.Empty(t, s.Token())
	assert.False(t, s.Authenticated())

	store.AssertExpectations(t)
}

func TestSession_LoginFailureKeepsOldToken(t *testing.T) {
	store := new(MockTokenRepository)
	store.On("Get", mock.Anything, repository.AuthTokenKey).Return("old", nil)
	store.On("Set", mock.Anything, repository.AuthTokenKey, "new").Return(errors.New("write failed"))

	s, err := New(context.Background(), store, zerolog.Nop())
	require.NoError(t, err)

	err = s.Login(context.Background(), "new")
	require.Error(t, err)
	assert.Equal(t, "old", s.Token())

	err = s.Login(context.Background(), "")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestSession_Status(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		token         func(t *testing.T) string
		authenticated bool
		hasExpiry     bool
	}{
		{
			name:          "No token",
			token:         func(t *testing.T) string { return "" },
			authenticated: false,
		},
		{
			name: "Unexpired JWT",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"id": "admin", "exp": now.Add(time.Hour).Unix()})
			},
			authenticated: true,
			hasExpiry:     true,
		},
		{
			name: "Expired JWT",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"id": "admin", "exp": now.Add(-time.Minute).Unix()})
			},
			authenticated: false,
			hasExpiry:     true,
		},
		{
			name: "JWT without exp",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"id": "admin"})
			},
			authenticated: true,
		},
		{
			name:          "Opaque token",
			token:         func(t *testing.T) string { return "opaque-session-id" },
			authenticated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{token: tt.token(t), now: func() time.Time { return now }, logger: zerolog.Nop()}

			status := s.Status()
			assert.Equal(t, tt.authenticated, status.Authenticated)
			assert.Equal(t, tt.hasExpiry, status.ExpiresAt != nil)
		})
	}
}
