package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lexserve/case-console/internal/core/ports"
)

// stubManager tracks which sids were resolved.
type stubManager struct {
	resolved []string
	store    *stubStore
}

func (m *stubManager) Resolve(_ context.Context, sid string) ports.SessionStore {
	m.resolved = append(m.resolved, sid)
	return m.store
}

func (m *stubManager) Drop(string) {}

func TestSession_MintsCookieOnFirstVisit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mgr := &stubManager{store: &stubStore{}}
	handler := Session(mgr, "secret")(func(c echo.Context) error {
		if _, ok := StoreFromContext(c); !ok {
			t.Fatalf("store not injected")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if len(mgr.resolved) != 1 || mgr.resolved[0] == "" {
		t.Fatalf("expected one non-empty sid resolution, got %v", mgr.resolved)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName {
			cookie = ck
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("expected console session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}
}

func TestSession_ReplaysExistingSid(t *testing.T) {
	e := echo.New()
	mgr := &stubManager{store: &stubStore{}}
	mw := Session(mgr, "secret")
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	// First visit mints the cookie.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := mw(next)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("first visit: %v", err)
	}
	var minted *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName {
			minted = ck
		}
	}
	if minted == nil {
		t.Fatalf("no cookie minted")
	}

	// Second visit replays it.
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(minted)
	rec2 := httptest.NewRecorder()
	if err := mw(next)(e.NewContext(req2, rec2)); err != nil {
		t.Fatalf("second visit: %v", err)
	}

	if len(mgr.resolved) != 2 || mgr.resolved[0] != mgr.resolved[1] {
		t.Fatalf("expected the same sid across visits, got %v", mgr.resolved)
	}
}

func TestSession_TamperedCookieStartsFresh(t *testing.T) {
	e := echo.New()
	mgr := &stubManager{store: &stubStore{}}
	mw := Session(mgr, "secret")
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-valid-token"})
	rec := httptest.NewRecorder()
	if err := mw(next)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if len(mgr.resolved) != 1 || mgr.resolved[0] == "" {
		t.Fatalf("tampered cookie should resolve a fresh sid, got %v", mgr.resolved)
	}

	replaced := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName && ck.Value != "not-a-valid-token" && ck.Value != "" {
			replaced = true
		}
	}
	if !replaced {
		t.Fatalf("expected a replacement cookie for the tampered one")
	}
}

func TestSession_WrongSigningKeyRejected(t *testing.T) {
	signed, err := mintSessionCookie("other-secret", "sid-1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	e := echo.New()
	mgr := &stubManager{store: &stubStore{}}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})
	rec := httptest.NewRecorder()

	handler := Session(mgr, "secret")(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if len(mgr.resolved) != 1 || mgr.resolved[0] == "sid-1" {
		t.Fatalf("sid signed with the wrong key must not be accepted, got %v", mgr.resolved)
	}
}
