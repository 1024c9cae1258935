package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spec-kit/facility-console/internal/domain"
	"github.com/spec-kit/facility-console/pkg/util/apierror"
)

// LoginResponse is the type-specific login payload. Unlike every other
// endpoint it carries the token fields at the top level.
type LoginResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Token     string         `json:"token"`
	TokenType string         `json:"token_type"`
	ExpiresIn int64          `json:"expires_in"`
	User      domain.Profile `json:"user"`
}

// AuthAPI catalogs the authentication endpoints. Persisting the credential
// after login is the session manager's job, not this facade's.
type AuthAPI struct {
	client *Client
}

// NewAuthAPI constructs the facade.
func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login posts credentials to the type-specific login endpoint. The call is
// unauthenticated; no token is attached.
func (a *AuthAPI) Login(ctx context.Context, userType domain.UserType, username, password string) (*LoginResponse, error) {
	body, err := a.client.roundTrip(ctx, Request{
		Method: http.MethodPost,
		Path:   "/" + string(userType) + "/login",
		Body:   loginRequest{Username: username, Password: password},
	})
	if err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apierror.NewNetwork(fmt.Errorf("decode login response: %w", err))
	}
	return &resp, nil
}

// Logout calls the type-specific logout endpoint with the stored token.
func (a *AuthAPI) Logout(ctx context.Context, userType domain.UserType) error {
	_, err := Do[json.RawMessage](ctx, a.client, Request{
		Method:        http.MethodPost,
		Path:          "/" + string(userType) + "/logout",
		Authenticated: true,
		UserType:      &userType,
	})
	return err
}

// Verify relays the navigation context to the server-side authorization
// check. Any error, including a 401-triggered credential clear, denies the
// route.
func (a *AuthAPI) Verify(ctx context.Context, route domain.RouteContext) error {
	_, err := Do[json.RawMessage](ctx, a.client, Request{
		Method:        http.MethodPost,
		Path:          "/auth/verify",
		Body:          route,
		Authenticated: true,
	})
	return err
}
