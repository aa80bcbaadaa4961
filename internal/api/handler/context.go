package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexserve/case-console/internal/api/middleware"
	"github.com/lexserve/case-console/internal/core/domain"
	"github.com/lexserve/case-console/internal/core/ports"
)

// snapshotFromContext reads the session snapshot injected by the Session
// middleware. Its absence means the route was wired without the middleware,
// a programming error surfaced as a 500.
func snapshotFromContext(c echo.Context) (domain.SessionSnapshot, error) {
	store, ok := middleware.StoreFromContext(c)
	if !ok {
		return domain.SessionSnapshot{}, echo.NewHTTPError(http.StatusInternalServerError, "session middleware not installed")
	}
	return store.Snapshot(), nil
}

// guardedSession returns the store and identity for a route behind the guard.
// The guard guarantees an authenticated snapshot; an unauthenticated one here
// means the guard was bypassed, so fail closed with a 401.
func guardedSession(c echo.Context) (ports.SessionStore, *domain.Identity, error) {
	store, ok := middleware.StoreFromContext(c)
	if !ok {
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "session middleware not installed")
	}
	snap := store.Snapshot()
	if !snap.Authenticated() {
		return nil, nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated session")
	}
	return store, snap.Identity, nil
}
