package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lexserve/case-console/internal/core/domain"
)

// messageRenderer writes the error page's message so tests can assert it.
type messageRenderer struct{}

func (messageRenderer) Render(w io.Writer, _ string, data any, _ echo.Context) error {
	page, ok := data.(errorPage)
	if !ok {
		return fmt.Errorf("unexpected payload %T", data)
	}
	_, err := io.WriteString(w, page.Message)
	return err
}

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Renderer = messageRenderer{}
	req := httptest.NewRequest(http.MethodGet, "/client", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHTTPErrorHandler_MapsDomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"expired session", domain.ErrNotAuthenticated, http.StatusUnauthorized, "your session has expired, please sign in again"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"registration conflict", &domain.RegistrationError{StatusCode: 409, Message: "email already registered"}, http.StatusUnprocessableEntity, "email already registered"},
		{"echo error passthrough", echo.NewHTTPError(http.StatusNotFound, "Not Found"), http.StatusNotFound, "Not Found"},
		{"unexpected upstream failure", errors.New("connection reset"), http.StatusBadGateway, "the platform is temporarily unavailable, please try again"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newErrorContext(t)
			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if rec.Body.String() != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, rec.Body.String())
			}
		})
	}
}

func TestHTTPErrorHandler_GenericMessageHidesCause(t *testing.T) {
	c, rec := newErrorContext(t)
	NewHTTPErrorHandler(zerolog.Nop())(errors.New("pq: password authentication failed for user"), c)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "the platform is temporarily unavailable, please try again" {
		t.Fatalf("internal cause leaked to the client: %q", body)
	}
}
