package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/lexserve/case-console/internal/core/domain"
)

// identityEnvelope is the backend's `{user: Identity}` response shape shared
// by /auth/me and /auth/login.
type identityEnvelope struct {
	User *domain.Identity `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	Role            string `json:"role"`
}

// CurrentIdentity resolves GET /auth/me. Every failure mode collapses to
// domain.ErrNotAuthenticated: on this endpoint, "cannot prove who you are"
// and "nobody is logged in" are the same outcome.
func (c *Client) CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error) {
	var envelope identityEnvelope
	if err := c.do(ctx, "auth_me", http.MethodGet, "/auth/me", token, nil, &envelope); err != nil {
		return nil, domain.ErrNotAuthenticated
	}
	if envelope.User == nil || !envelope.User.Role.Valid() {
		return nil, domain.ErrNotAuthenticated
	}
	return envelope.User, nil
}

// Login posts credentials to /auth/login and returns the identity plus the
// upstream session cookie. Any non-2xx is invalid credentials to the caller:
// wrong-email and wrong-password are deliberately indistinguishable.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.Identity, string, error) {
	var envelope identityEnvelope
	token, err := c.doWithCookies(ctx, "auth_login", http.MethodPost, "/auth/login",
		loginRequest{Email: creds.Email, Password: creds.Password}, &envelope)
	if err != nil {
		var he *httpError
		if errors.As(err, &he) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if envelope.User == nil || !envelope.User.Role.Valid() {
		return nil, "", domain.ErrInvalidCredentials
	}
	return envelope.User, token, nil
}

// Register posts to /auth/register. Backend validation and conflict errors
// surface as *domain.RegistrationError carrying the backend message when one
// was decodable.
func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	req := registerRequest{
		Name:            reg.Name,
		Email:           reg.Email,
		Address:         reg.Address,
		Phone:           reg.Phone,
		Password:        reg.Password,
		PasswordConfirm: reg.PasswordConfirm,
		Role:            string(reg.Role),
	}
	if err := c.do(ctx, "auth_register", http.MethodPost, "/auth/register", "", req, nil); err != nil {
		var he *httpError
		if errors.As(err, &he) {
			return &domain.RegistrationError{StatusCode: he.StatusCode, Message: he.message()}
		}
		return &domain.RegistrationError{}
	}
	return nil
}

// Logout posts to /auth/logout. Callers clear their local session regardless
// of this call's outcome.
func (c *Client) Logout(ctx context.Context, token string) error {
	if err := c.do(ctx, "auth_logout", http.MethodPost, "/auth/logout", token, nil, nil); err != nil {
		return domain.ErrLogoutEndpointFailed
	}
	return nil
}
