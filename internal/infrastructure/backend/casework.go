package backend

import (
	"context"
	"net/http"

	"github.com/lexserve/case-console/internal/core/domain"
)

// The list endpoints share one envelope shape: the collection under a
// resource-named key. Scoping (own cases vs all cases) happens server-side
// off the session cookie; the console adds no filtering.

func (c *Client) Appointments(ctx context.Context, token string) ([]domain.Appointment, error) {
	var envelope struct {
		Appointments []domain.Appointment `json:"appointments"`
	}
	if err := c.do(ctx, "appointments", http.MethodGet, "/appointments", token, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Appointments, nil
}

func (c *Client) Cases(ctx context.Context, token string) ([]domain.Case, error) {
	var envelope struct {
		Cases []domain.Case `json:"cases"`
	}
	if err := c.do(ctx, "cases", http.MethodGet, "/cases", token, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Cases, nil
}

func (c *Client) Tasks(ctx context.Context, token string) ([]domain.Task, error) {
	var envelope struct {
		Tasks []domain.Task `json:"tasks"`
	}
	if err := c.do(ctx, "tasks", http.MethodGet, "/tasks", token, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Tasks, nil
}

func (c *Client) Evidence(ctx context.Context, token string) ([]domain.Evidence, error) {
	var envelope struct {
		Evidence []domain.Evidence `json:"evidence"`
	}
	if err := c.do(ctx, "evidence", http.MethodGet, "/evidence", token, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Evidence, nil
}

func (c *Client) Payments(ctx context.Context, token string) ([]domain.Payment, error) {
	var envelope struct {
		Payments []domain.Payment `json:"payments"`
	}
	if err := c.do(ctx, "payments", http.MethodGet, "/payments", token, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Payments, nil
}

// PendingVerifications lists advocates awaiting credential review. The
// backend enforces that only admins may call it; the console's guard keeps
// non-admins off the page in the first place.
func (c *Client) PendingVerifications(ctx context.Context, token string) ([]domain.Identity, error) {
	var envelope struct {
		Advocates []domain.Identity `json:"advocates"`
	}
	if err := c.do(ctx, "pending_verifications", http.MethodGet, "/admin/advocates?verification=pending", token, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Advocates, nil
}

type verificationRequest struct {
	BarNumber      string `json:"bar_number"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
}

// SubmitVerification files the caller's credential review request. The
// identity changes server-side, so callers refresh the session afterwards.
func (c *Client) SubmitVerification(ctx context.Context, token string, req domain.VerificationRequest) error {
	return c.do(ctx, "submit_verification", http.MethodPost, "/advocate/verification", token,
		verificationRequest{
			BarNumber:      req.BarNumber,
			Specialization: req.Specialization,
			Experience:     req.Experience,
		}, nil)
}
