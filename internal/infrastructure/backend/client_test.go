package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lexserve/case-console/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL}, zerolog.Nop())
}

func TestCurrentIdentity_Success(t *testing.T) {
	var gotCookie string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotCookie = r.Header.Get("Cookie")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"u1","name":"Asha","email":"asha@example.com","role":"client"}}`))
	})

	identity, err := c.CurrentIdentity(context.Background(), "sid=abc123")
	if err != nil {
		t.Fatalf("CurrentIdentity returned error: %v", err)
	}
	if identity.Role != domain.RoleClient {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
	if gotCookie != "sid=abc123" {
		t.Fatalf("session cookie not replayed, got %q", gotCookie)
	}
}

func TestCurrentIdentity_FailuresCollapseToNotAuthenticated(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"401": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		},
		"500": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"user":`))
		},
		"missing user": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		},
		"unknown role": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"user":{"id":"u1","role":"superuser"}}`))
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, handler)
			if _, err := c.CurrentIdentity(context.Background(), ""); !errors.Is(err, domain.ErrNotAuthenticated) {
				t.Fatalf("expected ErrNotAuthenticated, got %v", err)
			}
		})
	}
}

func TestCurrentIdentity_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	c := NewClient(Config{BaseURL: srv.URL}, zerolog.Nop())

	if _, err := c.CurrentIdentity(context.Background(), ""); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated on transport failure, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "fresh-token", HttpOnly: true})
		_, _ = w.Write([]byte(`{"user":{"id":"u2","name":"Ravi","email":"ravi@example.com","role":"advocate"}}`))
	})

	identity, token, err := c.Login(context.Background(), domain.Credentials{Email: "ravi@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if identity.Role != domain.RoleAdvocate {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
	if token != "sid=fresh-token" {
		t.Fatalf("expected upstream cookie captured, got %q", token)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"user not found"}`))
	})

	_, _, err := c.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegister_ConflictCarriesBackendMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"email already registered"}`))
	})

	err := c.Register(context.Background(), domain.Registration{Email: "dup@example.com", Role: domain.RoleClient})
	var re *domain.RegistrationError
	if !errors.As(err, &re) {
		t.Fatalf("expected RegistrationError, got %v", err)
	}
	if re.Message != "email already registered" {
		t.Fatalf("backend message lost: %q", re.Message)
	}
	if re.StatusCode != http.StatusConflict {
		t.Fatalf("unexpected status: %d", re.StatusCode)
	}
}

func TestRegister_UndecodableBodyFallsBackGeneric(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	err := c.Register(context.Background(), domain.Registration{Email: "x@example.com"})
	var re *domain.RegistrationError
	if !errors.As(err, &re) {
		t.Fatalf("expected RegistrationError, got %v", err)
	}
	if re.Message != "" {
		t.Fatalf("expected empty message for undecodable body, got %q", re.Message)
	}
}

func TestLogout_FailureIsSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if err := c.Logout(context.Background(), "sid=abc"); !errors.Is(err, domain.ErrLogoutEndpointFailed) {
		t.Fatalf("expected ErrLogoutEndpointFailed, got %v", err)
	}
}

func TestCases_DecodesEnvelopeAndForwardsToken(t *testing.T) {
	var gotCookie string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		_, _ = w.Write([]byte(`{"cases":[{"id":"c1","title":"Estate of Rao","case_number":"LS-2026-014","status":"ongoing","client_id":"u1","advocate_id":"u2","created_at":"2026-03-01T10:00:00Z"}]}`))
	})

	cases, err := c.Cases(context.Background(), "sid=abc")
	if err != nil {
		t.Fatalf("Cases returned error: %v", err)
	}
	if len(cases) != 1 || cases[0].Status != domain.CaseOngoing {
		t.Fatalf("unexpected cases: %+v", cases)
	}
	if gotCookie != "sid=abc" {
		t.Fatalf("token not forwarded, got %q", gotCookie)
	}
}
