package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexserve/case-console/internal/api/metrics"
	"github.com/lexserve/case-console/internal/core/domain"
	"github.com/lexserve/case-console/internal/core/guard"
)

// Guard gates a route group behind the session's state and the given role
// set. An empty set admits any authenticated role. The decision itself lives
// in the guard package; this middleware only translates it to HTTP:
// placeholder page, 303 redirect, or the guarded handler.
func Guard(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store, ok := StoreFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusInternalServerError, "session middleware not installed")
			}

			decision := guard.Evaluate(store.Snapshot(), allowedRoles...)
			switch decision.Outcome {
			case guard.OutcomeLoading:
				metrics.GuardDecisionsTotal.WithLabelValues("loading").Inc()
				return c.Render(http.StatusOK, "loading", nil)
			case guard.OutcomeRedirectLogin:
				metrics.GuardDecisionsTotal.WithLabelValues("redirect_login").Inc()
				return c.Redirect(http.StatusSeeOther, decision.Target)
			case guard.OutcomeRedirectRoleRoot:
				metrics.GuardDecisionsTotal.WithLabelValues("redirect_role_root").Inc()
				return c.Redirect(http.StatusSeeOther, decision.Target)
			default:
				metrics.GuardDecisionsTotal.WithLabelValues("render").Inc()
				return next(c)
			}
		}
	}
}
