package domain

import "time"

// AuthEventKind classifies an entry in the authentication audit trail.
type AuthEventKind string

const (
	EventRegistered     AuthEventKind = "registered"
	EventLoginSucceeded AuthEventKind = "login_succeeded"
	EventLoginFailed    AuthEventKind = "login_failed"
	EventUserUpdated    AuthEventKind = "user_updated"
)

// AuthEvent records one authentication outcome for the audit trail. Events
// are persisted asynchronously; they never carry credentials.
type AuthEvent struct {
	Kind      AuthEventKind
	Email     string
	Role      Role
	Timestamp time.Time
}
