package guard

import (
	"testing"

	"github.com/lexserve/case-console/internal/core/domain"
)

func authedAs(role domain.Role) domain.SessionSnapshot {
	return domain.SessionSnapshot{
		State:    domain.StateAuthenticated,
		Identity: &domain.Identity{ID: "u1", Email: "u1@example.com", Role: role},
	}
}

func TestEvaluate_LoadingAlwaysPlaceholder(t *testing.T) {
	snap := domain.SessionSnapshot{State: domain.StateLoading}

	for _, roles := range [][]domain.Role{
		nil,
		{domain.RoleAdmin},
		{domain.RoleAdvocate, domain.RoleJuniorAdvocate},
		{domain.RoleAdmin, domain.RoleAdvocate, domain.RoleJuniorAdvocate, domain.RoleClient},
	} {
		d := Evaluate(snap, roles...)
		if d.Outcome != OutcomeLoading {
			t.Fatalf("roles %v: expected loading outcome, got %v", roles, d.Outcome)
		}
		if d.Target != "" {
			t.Fatalf("loading decision must not carry a redirect target, got %q", d.Target)
		}
	}
}

func TestEvaluate_UnauthenticatedRedirectsToLogin(t *testing.T) {
	snap := domain.SessionSnapshot{State: domain.StateUnauthenticated}

	for _, roles := range [][]domain.Role{nil, {domain.RoleClient}, {domain.RoleAdmin, domain.RoleAdvocate}} {
		d := Evaluate(snap, roles...)
		if d.Outcome != OutcomeRedirectLogin {
			t.Fatalf("roles %v: expected login redirect, got %v", roles, d.Outcome)
		}
		if d.Target != "/login" {
			t.Fatalf("expected /login target, got %q", d.Target)
		}
	}
}

func TestEvaluate_RoleMismatchRedirectsToOwnRoot(t *testing.T) {
	cases := []struct {
		role    domain.Role
		allowed []domain.Role
		target  string
	}{
		{domain.RoleClient, []domain.Role{domain.RoleAdvocate}, "/client"},
		{domain.RoleAdvocate, []domain.Role{domain.RoleAdmin}, "/advocate"},
		{domain.RoleJuniorAdvocate, []domain.Role{domain.RoleAdmin, domain.RoleClient}, "/junior_advocate"},
		{domain.RoleAdmin, []domain.Role{domain.RoleClient}, "/admin"},
	}

	for _, tc := range cases {
		d := Evaluate(authedAs(tc.role), tc.allowed...)
		if d.Outcome != OutcomeRedirectRoleRoot {
			t.Fatalf("role %s vs %v: expected role-root redirect, got %v", tc.role, tc.allowed, d.Outcome)
		}
		if d.Target != tc.target {
			t.Fatalf("role %s: expected redirect to %s, got %s", tc.role, tc.target, d.Target)
		}
		if d.Target == "/login" {
			t.Fatalf("authenticated mismatch must never redirect to login")
		}
	}
}

func TestEvaluate_MemberRoleRenders(t *testing.T) {
	d := Evaluate(authedAs(domain.RoleAdvocate), domain.RoleAdvocate, domain.RoleJuniorAdvocate)
	if d.Outcome != OutcomeRender {
		t.Fatalf("expected render, got %v", d.Outcome)
	}
}

func TestEvaluate_EmptyRoleSetMeansAnyAuthenticated(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleAdvocate, domain.RoleJuniorAdvocate, domain.RoleClient} {
		d := Evaluate(authedAs(role))
		if d.Outcome != OutcomeRender {
			t.Fatalf("role %s: expected render with empty allowed set, got %v", role, d.Outcome)
		}
	}
}

func TestEvaluate_AuthenticatedWithoutIdentityTreatedAsUnauthenticated(t *testing.T) {
	// A snapshot claiming authentication with no identity is malformed; the
	// safe decision is the login redirect.
	d := Evaluate(domain.SessionSnapshot{State: domain.StateAuthenticated})
	if d.Outcome != OutcomeRedirectLogin {
		t.Fatalf("expected login redirect for identity-less snapshot, got %v", d.Outcome)
	}
}
