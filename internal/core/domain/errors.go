package domain

import (
	"errors"
	"fmt"
)

var ErrNotAuthenticated = errors.New("not authenticated")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUnknownRole = errors.New("unknown role")
var ErrLogoutEndpointFailed = errors.New("logout endpoint failed")

// RegistrationError carries the backend's validation or conflict message so
// the form can show it verbatim. Message may be empty when the backend
// returned nothing decodable; callers fall back to a generic message.
type RegistrationError struct {
	StatusCode int
	Message    string
}

func (e *RegistrationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("registration failed (status %d)", e.StatusCode)
	}
	return e.Message
}
