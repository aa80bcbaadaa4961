package domain

// SessionState is the lifecycle state of the console's authentication session.
type SessionState string

const (
	// StateLoading holds from session creation until the first identity fetch
	// resolves. Guarded views must not evaluate role logic while loading.
	StateLoading SessionState = "loading"

	StateAuthenticated   SessionState = "authenticated"
	StateUnauthenticated SessionState = "unauthenticated"
)

// validSessionTransitions defines the allowed state machine transitions.
// Loading never recurs once left: refresh reconciles in place, without a
// visible loading flicker.
var validSessionTransitions = map[SessionState][]SessionState{
	StateLoading:         {StateAuthenticated, StateUnauthenticated},
	StateAuthenticated:   {StateAuthenticated, StateUnauthenticated},
	StateUnauthenticated: {StateAuthenticated, StateUnauthenticated},
}

// CanTransitionTo reports whether a transition from the current state to next is valid.
func (s SessionState) CanTransitionTo(next SessionState) bool {
	for _, allowed := range validSessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SessionSnapshot is a point-in-time read of the session. Identity is non-nil
// exactly when State is StateAuthenticated.
type SessionSnapshot struct {
	State    SessionState
	Identity *Identity
}

// Authenticated reports whether the snapshot carries a resolved identity.
func (s SessionSnapshot) Authenticated() bool {
	return s.State == StateAuthenticated && s.Identity != nil
}
