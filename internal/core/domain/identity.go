package domain

// Role represents an actor's authorization role within the platform.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleAdvocate       Role = "advocate"
	RoleJuniorAdvocate Role = "junior_advocate"
	RoleClient         Role = "client"
)

// roleRoots maps each role to its default landing path. Authorization
// mismatches redirect here, never to a shared denial page.
var roleRoots = map[Role]string{
	RoleAdmin:          "/admin",
	RoleAdvocate:       "/advocate",
	RoleJuniorAdvocate: "/junior_advocate",
	RoleClient:         "/client",
}

// ParseRole validates a role string received from the backend or a form.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleRoots[r]; !ok {
		return "", ErrUnknownRole
	}
	return r, nil
}

// RootPath returns the role's default landing path, or "/login" for a role
// outside the closed set.
func (r Role) RootPath() string {
	if root, ok := roleRoots[r]; ok {
		return root
	}
	return "/login"
}

// Valid reports whether the role belongs to the closed set exchanged with the backend.
func (r Role) Valid() bool {
	_, ok := roleRoots[r]
	return ok
}

// VerificationStatus tracks an advocate's credential review lifecycle.
type VerificationStatus string

const (
	VerificationNotRequired VerificationStatus = "not_required"
	VerificationPending     VerificationStatus = "pending"
	VerificationApproved    VerificationStatus = "approved"
	VerificationRejected    VerificationStatus = "rejected"
)

// Identity models the authenticated principal as reported by the backend.
// Role is immutable for the lifetime of a session.
type Identity struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Role               Role               `json:"role"`
	VerificationStatus VerificationStatus `json:"verification_status,omitempty"`
	Phone              string             `json:"phone,omitempty"`
	Address            string             `json:"address,omitempty"`
	Specialization     string             `json:"specialization,omitempty"`
	BarNumber          string             `json:"bar_number,omitempty"`
}

// Credentials carries a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Registration carries a new-account request. Registration never logs the
// caller in; the backend decides whether the account needs verification.
type Registration struct {
	Name            string
	Email           string
	Address         string
	Phone           string
	Password        string
	PasswordConfirm string
	Role            Role
}
