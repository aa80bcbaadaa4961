package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lexserve/case-console/internal/api/metrics"
	"github.com/lexserve/case-console/internal/core/domain"
	"github.com/lexserve/case-console/internal/core/ports"
)

// SessionService owns one console session's state and is its only writer.
// It starts in the loading state and leaves it exactly once, whatever the
// bootstrap outcome.
type SessionService struct {
	provider ports.IdentityProvider
	logger   zerolog.Logger

	mu           sync.Mutex
	state        domain.SessionState
	identity     *domain.Identity
	token        string
	bootstrapped bool
}

func NewSessionService(provider ports.IdentityProvider, logger zerolog.Logger) *SessionService {
	return &SessionService{
		provider: provider,
		logger:   logger,
		state:    domain.StateLoading,
	}
}

// Bootstrap resolves the initial identity via the backend. Any failure lands
// in the unauthenticated state: not being logged in is a normal outcome and
// is never surfaced to the user. Subsequent calls are no-ops, and a result
// arriving after the session has already left the loading state is discarded.
func (s *SessionService) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	if s.bootstrapped {
		s.mu.Unlock()
		return
	}
	s.bootstrapped = true
	token := s.token
	s.mu.Unlock()

	identity, err := s.provider.CurrentIdentity(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StateLoading {
		// A login or logout completed while the fetch was in flight; its
		// state is newer than this result.
		return
	}
	if err != nil {
		s.transition(domain.StateUnauthenticated, nil)
		metrics.SessionBootstrapsTotal.WithLabelValues("unauthenticated").Inc()
		s.logger.Debug().Err(err).Msg("bootstrap resolved unauthenticated")
		return
	}
	s.transition(domain.StateAuthenticated, identity)
	metrics.SessionBootstrapsTotal.WithLabelValues("authenticated").Inc()
	s.logger.Info().Str("role", string(identity.Role)).Msg("session bootstrapped")
}

// Login authenticates against the backend. On success the state becomes
// authenticated and the identity is returned so the caller can navigate to
// its role root. On failure the state is untouched and the error propagates;
// the caller owns the user-facing message.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) (*domain.Identity, error) {
	identity, token, err := s.provider.Login(ctx, creds)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.bootstrapped = true
	s.transition(domain.StateAuthenticated, identity)
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("role", string(identity.Role)).Msg("login succeeded")
	return identity, nil
}

// Register creates an account without changing the session: registration is
// not auto-login. Backend validation errors propagate to the caller.
func (s *SessionService) Register(ctx context.Context, reg domain.Registration) error {
	return s.provider.Register(ctx, reg)
}

// Logout invalidates the server-side session and clears the local one.
// The local transition happens regardless of the endpoint outcome: the user's
// intent is to end the session even if the server call fails silently.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if err := s.provider.Logout(ctx, token); err != nil {
		s.logger.Warn().Err(err).Msg("logout endpoint failed, clearing local session anyway")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.bootstrapped = true
	s.transition(domain.StateUnauthenticated, nil)
}

// Refresh re-fetches the identity to reconcile out-of-band profile changes,
// e.g. after a verification submission. Unlike Bootstrap it never re-enters
// the loading state, so there is no placeholder flicker; a session that died
// server-side between calls drops to unauthenticated.
func (s *SessionService) Refresh(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	identity, err := s.provider.CurrentIdentity(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.transition(domain.StateUnauthenticated, nil)
		s.logger.Debug().Err(err).Msg("refresh found session gone")
		return
	}
	s.transition(domain.StateAuthenticated, identity)
}

// Snapshot returns a consistent point-in-time read of the session.
func (s *SessionService) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SessionSnapshot{State: s.state, Identity: s.identity}
}

// Token returns the upstream session cookie value held for this session.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// transition applies a state change under s.mu. Invalid transitions indicate
// a programming error and are logged, not applied.
func (s *SessionService) transition(next domain.SessionState, identity *domain.Identity) {
	if !s.state.CanTransitionTo(next) {
		s.logger.Error().
			Str("from", string(s.state)).
			Str("to", string(next)).
			Msg("invalid session transition dropped")
		return
	}
	s.state = next
	s.identity = identity
}
