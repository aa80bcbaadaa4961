package ports

import (
	"context"

	"github.com/lexserve/case-console/internal/core/domain"
)

// IdentityProvider wraps the backend's identity endpoints. The token is the
// opaque upstream session cookie value; the provider is stateless and attaches
// it per call, the session store owns it.
type IdentityProvider interface {
	// CurrentIdentity resolves /auth/me. Any failure, transport or HTTP,
	// surfaces as domain.ErrNotAuthenticated.
	CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error)
	// Login exchanges credentials for an identity and a fresh upstream token.
	Login(ctx context.Context, creds domain.Credentials) (*domain.Identity, string, error)
	Register(ctx context.Context, reg domain.Registration) error
	Logout(ctx context.Context, token string) error
}
