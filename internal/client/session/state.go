package session

// State is a snapshot of the session.
type State struct {
	// Credential is the bearer credential, empty when anonymous.
	Credential string
}

// Authenticated reports whether a credential is present.
func (s State) Authenticated() bool {
	return s.Credential != ""
}

// EventType names a session transition.
type EventType string

const (
	// EventLogin follows a successful Login.
	EventLogin EventType = "login"
	// EventLogout follows a Logout that left the Authenticated state.
	EventLogout EventType = "logout"
	// EventSync follows a Sync that picked up a change made through the store
	// by another process.
	EventSync EventType = "sync"
)

// Event is delivered to subscribers after a transition has been applied.
type Event struct {
	Type  EventType
	State State
}
