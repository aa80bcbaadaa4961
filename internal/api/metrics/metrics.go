// Package metrics defines and registers all custom Prometheus metrics for the
// case console. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics self-register with the default registry via promauto at import
// time; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionBootstrapsTotal counts bootstrap resolutions by outcome.
// Label:
//   - outcome: "authenticated" or "unauthenticated"
var SessionBootstrapsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_bootstraps_total",
		Help:      "Total number of session bootstraps, by resolution outcome.",
	},
	[]string{"outcome"},
)

// LoginAttemptsTotal counts login attempts forwarded to the backend.
// Label:
//   - outcome: "success", "failure", or "rate_limited"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Guard metrics ─────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard evaluations.
// Label:
//   - decision: "render", "loading", "redirect_login", or "redirect_role_root"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by outcome.",
	},
	[]string{"decision"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestDuration measures backend round-trip time per endpoint.
// Labels:
//   - endpoint: the logical upstream operation (e.g. "auth_me", "cases")
//   - status: the HTTP status class ("2xx", "4xx", "5xx") or "error"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of HTTP round-trips to the platform backend.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"endpoint", "status"},
)
