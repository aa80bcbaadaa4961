package ports

import (
	"context"

	"github.com/lexserve/case-console/internal/core/domain"
)

// CaseworkClient wraps the backend's resource endpoints consumed by the role
// dashboards. All methods are thin reads scoped server-side by the upstream
// session token; the console adds no filtering of its own.
type CaseworkClient interface {
	Appointments(ctx context.Context, token string) ([]domain.Appointment, error)
	Cases(ctx context.Context, token string) ([]domain.Case, error)
	Tasks(ctx context.Context, token string) ([]domain.Task, error)
	Evidence(ctx context.Context, token string) ([]domain.Evidence, error)
	Payments(ctx context.Context, token string) ([]domain.Payment, error)
	// PendingVerifications lists advocates awaiting credential review (admin only).
	PendingVerifications(ctx context.Context, token string) ([]domain.Identity, error)
	// SubmitVerification files the caller's credential review request.
	SubmitVerification(ctx context.Context, token string, req domain.VerificationRequest) error
}

// LoginLimiter bounds failed login attempts per account identifier.
type LoginLimiter interface {
	// TooManyFailures reports whether the identifier is over the window limit.
	TooManyFailures(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
