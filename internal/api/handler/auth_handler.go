package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lexserve/case-console/internal/api/metrics"
	"github.com/lexserve/case-console/internal/api/middleware"
	"github.com/lexserve/case-console/internal/core/domain"
	"github.com/lexserve/case-console/internal/core/ports"
)

// genericLoginError is shown for every failed login, including rate-limited
// ones: wrong-email, wrong-password, and locked-out are indistinguishable to
// avoid account enumeration.
const genericLoginError = "invalid email or password"

// AuthHandler serves the session pages: login, register, logout, and the root
// redirect. It reads session state only through the store the middleware
// injected; the handlers never talk to the backend directly.
type AuthHandler struct {
	manager ports.SessionManager
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewAuthHandler(manager ports.SessionManager, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{manager: manager, limiter: limiter, logger: logger}
}

type loginPage struct {
	Email string
	Error string
}

type registerPage struct {
	Name    string
	Email   string
	Address string
	Phone   string
	Error   string
	Success bool
}

// Home handles GET /. It sends the caller wherever their session points:
// role root when authenticated, login otherwise, placeholder while loading.
func (h *AuthHandler) Home(c echo.Context) error {
	snap, err := snapshotFromContext(c)
	if err != nil {
		return err
	}
	switch {
	case snap.State == domain.StateLoading:
		return c.Render(http.StatusOK, "loading", nil)
	case snap.Authenticated():
		return c.Redirect(http.StatusSeeOther, snap.Identity.Role.RootPath())
	default:
		return c.Redirect(http.StatusSeeOther, "/login")
	}
}

// LoginPage handles GET /login. An already-authenticated visitor is sent to
// their role root rather than shown the form again.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	snap, err := snapshotFromContext(c)
	if err != nil {
		return err
	}
	if snap.State == domain.StateLoading {
		return c.Render(http.StatusOK, "loading", nil)
	}
	if snap.Authenticated() {
		return c.Redirect(http.StatusSeeOther, snap.Identity.Role.RootPath())
	}
	return c.Render(http.StatusOK, "login", loginPage{})
}

// Login handles POST /login. The returned identity's role picks the
// post-login destination.
func (h *AuthHandler) Login(c echo.Context) error {
	store, ok := middleware.StoreFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "session middleware not installed")
	}

	var form loginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", loginPage{Error: genericLoginError})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", loginPage{Email: form.Email, Error: err.Error()})
	}

	ctx := c.Request().Context()

	locked, err := h.limiter.TooManyFailures(ctx, form.Email)
	if err != nil {
		// Redis being down must not block sign-in.
		h.logger.Warn().Err(err).Msg("login limiter unavailable, failing open")
	} else if locked {
		metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
		return c.Render(http.StatusTooManyRequests, "login", loginPage{Email: form.Email, Error: genericLoginError})
	}

	identity, err := store.Login(ctx, domain.Credentials{Email: form.Email, Password: form.Password})
	if err != nil {
		if recErr := h.limiter.RecordFailure(ctx, form.Email); recErr != nil {
			h.logger.Warn().Err(recErr).Msg("could not record login failure")
		}
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			h.logger.Error().Err(err).Msg("login failed for a non-credential reason")
		}
		return c.Render(http.StatusUnauthorized, "login", loginPage{Email: form.Email, Error: genericLoginError})
	}

	if err := h.limiter.Reset(ctx, form.Email); err != nil {
		h.logger.Warn().Err(err).Msg("could not reset login failure counter")
	}
	return c.Redirect(http.StatusSeeOther, identity.Role.RootPath())
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	snap, err := snapshotFromContext(c)
	if err != nil {
		return err
	}
	if snap.State == domain.StateLoading {
		return c.Render(http.StatusOK, "loading", nil)
	}
	if snap.Authenticated() {
		return c.Redirect(http.StatusSeeOther, snap.Identity.Role.RootPath())
	}
	return c.Render(http.StatusOK, "register", registerPage{})
}

// Register handles POST /register. Success does not log the caller in; the
// page links back to /login instead.
func (h *AuthHandler) Register(c echo.Context) error {
	store, ok := middleware.StoreFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "session middleware not installed")
	}

	var form registerForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register", registerPage{Error: "invalid form submission"})
	}
	page := registerPage{Name: form.Name, Email: form.Email, Address: form.Address, Phone: form.Phone}
	if err := c.Validate(&form); err != nil {
		page.Error = err.Error()
		return c.Render(http.StatusBadRequest, "register", page)
	}

	role, err := domain.ParseRole(form.Role)
	if err != nil {
		page.Error = "choose a valid account type"
		return c.Render(http.StatusBadRequest, "register", page)
	}

	err = store.Register(c.Request().Context(), domain.Registration{
		Name:            form.Name,
		Email:           form.Email,
		Address:         form.Address,
		Phone:           form.Phone,
		Password:        form.Password,
		PasswordConfirm: form.PasswordConfirm,
		Role:            role,
	})
	if err != nil {
		var re *domain.RegistrationError
		if errors.As(err, &re) && re.Message != "" {
			page.Error = re.Message
		} else {
			page.Error = "registration failed, please try again"
		}
		return c.Render(http.StatusUnprocessableEntity, "register", page)
	}

	page.Success = true
	return c.Render(http.StatusOK, "register", page)
}

// Logout handles POST /logout. The local session is cleared whatever the
// backend call does; the next request starts a fresh console session.
func (h *AuthHandler) Logout(c echo.Context) error {
	store, ok := middleware.StoreFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "session middleware not installed")
	}

	store.Logout(c.Request().Context())
	if sid, ok := c.Get(middleware.ContextKeySID).(string); ok {
		h.manager.Drop(sid)
	}
	middleware.ClearSessionCookie(c)

	return c.Redirect(http.StatusSeeOther, "/login")
}
