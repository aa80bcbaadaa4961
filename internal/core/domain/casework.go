package domain

import "time"

// CaseStatus represents the lifecycle state of a legal case.
type CaseStatus string

const (
	CaseOpen     CaseStatus = "open"
	CaseOngoing  CaseStatus = "ongoing"
	CaseClosed   CaseStatus = "closed"
	CaseArchived CaseStatus = "archived"
)

// Case is a legal matter as listed by the backend.
type Case struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	CaseNumber  string     `json:"case_number"`
	Status      CaseStatus `json:"status"`
	ClientID    string     `json:"client_id"`
	AdvocateID  string     `json:"advocate_id"`
	NextHearing *time.Time `json:"next_hearing,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Appointment is a scheduled consultation between a client and an advocate.
type Appointment struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	AdvocateID  string    `json:"advocate_id"`
	Subject     string    `json:"subject"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"` // pending, confirmed, completed, cancelled
}

// Task is a unit of case work assigned to a junior advocate.
type Task struct {
	ID         string     `json:"id"`
	CaseID     string     `json:"case_id"`
	AssigneeID string     `json:"assignee_id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"` // todo, in_progress, done
	DueDate    *time.Time `json:"due_date,omitempty"`
}

// Evidence is a document or exhibit attached to a case.
type Evidence struct {
	ID         string    `json:"id"`
	CaseID     string    `json:"case_id"`
	Title      string    `json:"title"`
	FileURL    string    `json:"file_url"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Payment is an invoice or settlement record visible on the dashboards.
type Payment struct {
	ID        string    `json:"id"`
	CaseID    string    `json:"case_id"`
	ClientID  string    `json:"client_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"` // pending, paid, refunded
	CreatedAt time.Time `json:"created_at"`
}

// VerificationRequest is the payload a provisional advocate submits for
// credential review. Submitting one changes the identity server-side, so the
// session refreshes afterwards.
type VerificationRequest struct {
	BarNumber      string
	Specialization string
	Experience     string
}
