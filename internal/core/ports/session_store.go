package ports

import (
	"context"

	"github.com/lexserve/case-console/internal/core/domain"
)

// SessionStore owns one console session's SessionState and is the only writer
// of it. Exactly one of loading/authenticated/unauthenticated holds at any
// time; Loading terminates exactly once and never recurs.
type SessionStore interface {
	// Bootstrap resolves the initial identity. Failure is a normal outcome
	// (not logged in), never an error to surface.
	Bootstrap(ctx context.Context)
	// Login authenticates and returns the identity so the caller can pick the
	// post-login destination from its role.
	Login(ctx context.Context, creds domain.Credentials) (*domain.Identity, error)
	// Register creates an account without changing SessionState.
	Register(ctx context.Context, reg domain.Registration) error
	// Logout clears the local session even when the endpoint call fails.
	Logout(ctx context.Context)
	// Refresh reconciles the identity in place, without passing back through
	// the loading state.
	Refresh(ctx context.Context)
	// Snapshot returns a consistent point-in-time read of the session.
	Snapshot() domain.SessionSnapshot
	// Token returns the upstream session cookie value, empty when not held.
	Token() string
}

// SessionManager resolves the SessionStore for a console session id, creating
// one in the loading state on first sight.
type SessionManager interface {
	Resolve(ctx context.Context, sid string) SessionStore
	// Drop discards a store, ending the console session locally.
	Drop(sid string)
}
