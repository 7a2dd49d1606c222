package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"agrive-admin/internal/model"
)

// ErrNoToken is returned when a login succeeds without a token in the body.
// It wraps ErrUnavailable: the API answered but not usably.
var ErrNoToken = fmt.Errorf("%w: login response did not contain a token", ErrUnavailable)

// Login exchanges admin credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds model.LoginRequest) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/loginAdmin", authNone, creds, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrNoToken
	}
	return resp.Token, nil
}
