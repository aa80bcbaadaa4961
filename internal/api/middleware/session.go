package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lexserve/case-console/internal/core/ports"
)

const (
	// SessionCookieName is the console's own cookie. It carries only a signed
	// session id; the upstream session cookie never reaches the browser.
	SessionCookieName = "console_session"

	// ContextKeySession is where the resolved SessionStore lives on the echo context.
	ContextKeySession = "session_store"
	// ContextKeySID is the console session id.
	ContextKeySID = "session_id"

	cookieTTL = 12 * time.Hour
)

type sessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// Session resolves the caller's SessionStore and injects it into the context.
// A missing, expired, or tampered cookie starts a fresh console session; the
// new store begins in the loading state and bootstraps in the background.
func Session(manager ports.SessionManager, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := sidFromCookie(c, secret)
			if sid == "" {
				sid = uuid.NewString()
				signed, err := mintSessionCookie(secret, sid)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "could not establish session")
				}
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    signed,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(cookieTTL),
				})
			}

			store := manager.Resolve(c.Request().Context(), sid)
			c.Set(ContextKeySession, store)
			c.Set(ContextKeySID, sid)

			return next(c)
		}
	}
}

// ClearSessionCookie expires the console cookie. Used on logout.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// StoreFromContext extracts the SessionStore injected by the Session middleware.
func StoreFromContext(c echo.Context) (ports.SessionStore, bool) {
	store, ok := c.Get(ContextKeySession).(ports.SessionStore)
	return store, ok
}

func mintSessionCookie(secret, sid string) (string, error) {
	claims := sessionClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cookieTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// sidFromCookie returns the session id from a valid cookie, or "" when the
// cookie is absent, expired, or fails signature verification.
func sidFromCookie(c echo.Context, secret string) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return ""
	}
	return claims.SID
}
