package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexserve/case-console/internal/core/domain"
	"github.com/lexserve/case-console/internal/core/ports"
)

// DashboardHandler renders the role-scoped landing pages. Each handler is a
// thin wrapper: fetch the role's lists from the backend, hand them to the
// template. The guard middleware has already decided the caller may be here.
type DashboardHandler struct {
	casework ports.CaseworkClient
}

func NewDashboardHandler(casework ports.CaseworkClient) *DashboardHandler {
	return &DashboardHandler{casework: casework}
}

// dashboardPage is the shared template payload; each role fills its sections.
type dashboardPage struct {
	Title                string
	Identity             *domain.Identity
	Notice               string
	PendingVerifications []domain.Identity
	Appointments         []domain.Appointment
	Cases                []domain.Case
	Tasks                []domain.Task
	Evidence             []domain.Evidence
	Payments             []domain.Payment
	ShowVerificationForm bool
}

// Admin handles GET /admin: advocates awaiting verification, all cases, payments.
func (h *DashboardHandler) Admin(c echo.Context) error {
	store, identity, err := guardedSession(c)
	if err != nil {
		return err
	}
	ctx, token := c.Request().Context(), store.Token()

	pending, err := h.casework.PendingVerifications(ctx, token)
	if err != nil {
		return err
	}
	cases, err := h.casework.Cases(ctx, token)
	if err != nil {
		return err
	}
	payments, err := h.casework.Payments(ctx, token)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "dashboard", dashboardPage{
		Title:                "Administration",
		Identity:             identity,
		PendingVerifications: pending,
		Cases:                cases,
		Payments:             payments,
	})
}

// Advocate handles GET /advocate: appointments, cases, tasks, and the
// verification form while the advocate's credentials are not yet approved.
func (h *DashboardHandler) Advocate(c echo.Context) error {
	store, identity, err := guardedSession(c)
	if err != nil {
		return err
	}
	ctx, token := c.Request().Context(), store.Token()

	appointments, err := h.casework.Appointments(ctx, token)
	if err != nil {
		return err
	}
	cases, err := h.casework.Cases(ctx, token)
	if err != nil {
		return err
	}
	tasks, err := h.casework.Tasks(ctx, token)
	if err != nil {
		return err
	}

	page := dashboardPage{
		Title:        "Advocate workspace",
		Identity:     identity,
		Appointments: appointments,
		Cases:        cases,
		Tasks:        tasks,
		ShowVerificationForm: identity.VerificationStatus == domain.VerificationPending ||
			identity.VerificationStatus == domain.VerificationRejected,
	}
	if identity.VerificationStatus == domain.VerificationPending {
		page.Notice = "Your credentials are under review."
	}
	return c.Render(http.StatusOK, "dashboard", page)
}

// JuniorAdvocate handles GET /junior_advocate: assigned tasks and case evidence.
func (h *DashboardHandler) JuniorAdvocate(c echo.Context) error {
	store, identity, err := guardedSession(c)
	if err != nil {
		return err
	}
	ctx, token := c.Request().Context(), store.Token()

	tasks, err := h.casework.Tasks(ctx, token)
	if err != nil {
		return err
	}
	evidence, err := h.casework.Evidence(ctx, token)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "dashboard", dashboardPage{
		Title:    "Junior advocate workspace",
		Identity: identity,
		Tasks:    tasks,
		Evidence: evidence,
	})
}

// Client handles GET /client: the client's appointments, cases, and payments.
func (h *DashboardHandler) Client(c echo.Context) error {
	store, identity, err := guardedSession(c)
	if err != nil {
		return err
	}
	ctx, token := c.Request().Context(), store.Token()

	appointments, err := h.casework.Appointments(ctx, token)
	if err != nil {
		return err
	}
	cases, err := h.casework.Cases(ctx, token)
	if err != nil {
		return err
	}
	payments, err := h.casework.Payments(ctx, token)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "dashboard", dashboardPage{
		Title:        "My cases",
		Identity:     identity,
		Appointments: appointments,
		Cases:        cases,
		Payments:     payments,
	})
}

// SubmitVerification handles POST /advocate/verification. The submission
// changes the identity server-side, so the session refreshes before the
// redirect; no loading flicker, per the refresh contract.
func (h *DashboardHandler) SubmitVerification(c echo.Context) error {
	store, _, err := guardedSession(c)
	if err != nil {
		return err
	}

	var form verificationForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.casework.SubmitVerification(ctx, store.Token(), domain.VerificationRequest{
		BarNumber:      form.BarNumber,
		Specialization: form.Specialization,
		Experience:     form.Experience,
	}); err != nil {
		return err
	}

	store.Refresh(ctx)
	return c.Redirect(http.StatusSeeOther, "/advocate")
}
