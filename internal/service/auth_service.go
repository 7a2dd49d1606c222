package service

import (
	"context"
	"fmt"
	"strings"

	"agrive-admin/internal/model"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	api     AuthAPI
	session SessionStore
	logger  zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(api AuthAPI, session SessionStore, logger zerolog.Logger) AuthService {
	return &authService{
		api:     api,
		session: session,
		logger:  logger.With().Str("service", "auth").Logger(),
	}
}

// Login authenticates and stores the returned token.
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (model.SessionStatus, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return model.SessionStatus{}, model.Validation("email and password are required")
	}

	token, err := s.api.Login(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", req.Email).Msg("admin login failed")
		return model.SessionStatus{}, err
	}

	if err := s.session.Login(ctx, token); err != nil {
		s.logger.Error().Err(err).Msg("failed to store session")
		return model.SessionStatus{}, fmt.Errorf("failed to login: %w", err)
	}

	return s.session.Status(), nil
}

// Logout clears the session.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.session.Logout(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear session")
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

// Status reports the session state.
func (s *authService) Status() model.SessionStatus {
	return s.session.Status()
}
