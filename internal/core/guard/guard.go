// Package guard decides, for a guarded view and its allowed roles, whether to
// render, show the loading placeholder, or redirect. It is a pure function of
// the session snapshot: no I/O, no side effects, re-evaluated on every request.
package guard

import "github.com/lexserve/case-console/internal/core/domain"

// Outcome enumerates the guard's possible decisions.
type Outcome int

const (
	// OutcomeLoading renders the placeholder only. Role logic is never
	// evaluated while the bootstrap is unresolved, so an authenticated user
	// whose identity fetch is still in flight is neither redirected to login
	// nor flashed an unauthorized view.
	OutcomeLoading Outcome = iota
	// OutcomeRedirectLogin sends an unauthenticated caller to the login view.
	// The original target is not preserved.
	OutcomeRedirectLogin
	// OutcomeRedirectRoleRoot sends an authenticated caller whose role is not
	// allowed back to their own role's landing path, never to a denial page.
	OutcomeRedirectRoleRoot
	// OutcomeRender lets the guarded view render.
	OutcomeRender
)

// Decision is the guard's verdict. Target is set for the redirect outcomes.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Evaluate applies the decision table to a session snapshot. An empty
// allowedRoles set means any authenticated role may view.
func Evaluate(snap domain.SessionSnapshot, allowedRoles ...domain.Role) Decision {
	if snap.State == domain.StateLoading {
		return Decision{Outcome: OutcomeLoading}
	}
	if !snap.Authenticated() {
		return Decision{Outcome: OutcomeRedirectLogin, Target: "/login"}
	}
	if len(allowedRoles) > 0 && !roleAllowed(snap.Identity.Role, allowedRoles) {
		return Decision{Outcome: OutcomeRedirectRoleRoot, Target: snap.Identity.Role.RootPath()}
	}
	return Decision{Outcome: OutcomeRender}
}

func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
