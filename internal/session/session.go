// Package session keeps the admin bearer token for the lifetime of the
// process and persists it across restarts.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agrive-admin/internal/model"
	"agrive-admin/internal/repository"

	"github.com/dgrijalva/jwt-go"
	"github.com/rs/zerolog"
)

// Session holds the admin token. It is safe for concurrent use and
// satisfies apiclient.TokenSource.
type Session struct {
	mu     sync.RWMutex
	token  string
	store  repository.TokenRepository
	now    func() time.Time
	logger zerolog.Logger
}

// New loads the stored token once.
func New(ctx context.Context, store repository.TokenRepository, logger zerolog.Logger) (*Session, error) {
	logger = logger.With().Str("component", "session").Logger()

	token, err := store.Get(ctx, repository.AuthTokenKey)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load stored token")
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	logger.Info().Bool("has_token", token != "").Msg("session loaded")

	return &Session{
		token:  token,
		store:  store,
		now:    time.Now,
		logger: logger,
	}, nil
}

// Token returns the current bearer token, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Login persists token and makes it current.
func (s *Session) Login(ctx context.Context, token string) error {
	if token == "" {
		return model.Validation("token must not be empty")
	}
	if err := s.store.Set(ctx, repository.AuthTokenKey, token); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.logger.Info().Msg("admin logged in")
	return nil
}

// Logout forgets the token.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, repository.AuthTokenKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	s.logger.Info().Msg("admin logged out")
	return nil
}

// Status reports whether the session looks usable. The token signature is
// not verified; only the server can do that.
func (s *Session) Status() model.SessionStatus {
	token := s.Token()
	if token == "" {
		return model.SessionStatus{}
	}

	exp, ok := expiry(token)
	if !ok {
		return model.SessionStatus{Authenticated: true}
	}

	ms := exp.UnixMilli()
	return model.SessionStatus{
		Authenticated: s.now().Before(exp),
		ExpiresAt:     &ms,
	}
}

// Authenticated reports whether a token is present and not expired.
func (s *Session) Authenticated() bool {
	return s.Status().Authenticated
}

// expiry returns the exp claim of a JWT, if it has one. Tokens that are
// not JWTs have no known expiry.
func expiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	switch exp := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(exp), 0), true
	case int64:
		return time.Unix(exp, 0), true
	default:
		return time.Time{}, false
	}
}
