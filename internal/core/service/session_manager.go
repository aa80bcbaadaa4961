package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lexserve/case-console/internal/core/ports"
)

// SessionManager keys session stores by console session id. A store is
// created in the loading state on first sight and its bootstrap kicked off in
// the background; the guard shows the placeholder until it resolves.
type SessionManager struct {
	provider ports.IdentityProvider
	logger   zerolog.Logger

	mu       sync.Mutex
	stores   map[string]*SessionService
	lastSeen map[string]time.Time
}

func NewSessionManager(provider ports.IdentityProvider, logger zerolog.Logger) *SessionManager {
	return &SessionManager{
		provider: provider,
		logger:   logger,
		stores:   make(map[string]*SessionService),
		lastSeen: make(map[string]time.Time),
	}
}

// Resolve returns the store for sid, creating it on first sight. Creation
// starts the bootstrap asynchronously; the caller sees the loading state
// until it resolves. Bootstrap runs at most once per store.
func (m *SessionManager) Resolve(ctx context.Context, sid string) ports.SessionStore {
	m.mu.Lock()
	store, ok := m.stores[sid]
	if !ok {
		store = NewSessionService(m.provider, m.logger.With().Str("sid", sid).Logger())
		m.stores[sid] = store
	}
	m.lastSeen[sid] = time.Now()
	m.mu.Unlock()

	if !ok {
		// Detached from the request context: a cancelled first request must
		// not leave the store stuck in the loading state.
		go store.Bootstrap(context.WithoutCancel(ctx))
	}
	return store
}

// Drop discards the store for sid. Used after logout so the next request
// starts a fresh console session.
func (m *SessionManager) Drop(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sid)
	delete(m.lastSeen, sid)
}

// Sweep discards stores idle longer than maxIdle and returns how many were
// dropped. The entrypoint runs it on a ticker; an expired console cookie
// means the browser re-bootstraps on its next visit anyway.
func (m *SessionManager) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()
	dropped := 0
	for sid, seen := range m.lastSeen {
		if seen.Before(cutoff) {
			delete(m.stores, sid)
			delete(m.lastSeen, sid)
			dropped++
		}
	}
	return dropped
}
