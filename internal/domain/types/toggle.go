package types

// ToggleState is a step of the favorite toggle state machine.
type ToggleState string

const (
	ToggleIdle        ToggleState = "idle"
	ToggleChecking    ToggleState = "checking"
	ToggleChallenging ToggleState = "challenging"
	ToggleCommitting  ToggleState = "committing"
	ToggleCommitted   ToggleState = "committed"
	ToggleRejected    ToggleState = "rejected"
	ToggleFailed      ToggleState = "failed"
)

// String returns the string form of the state.
func (s ToggleState) String() string { return string(s) }

// Terminal reports whether no further transition follows s.
func (s ToggleState) Terminal() bool {
	switch s {
	case ToggleCommitted, ToggleRejected, ToggleFailed:
		return true
	default:
		return false
	}
}

// ToggleOutcome describes how one toggle request ended.
type ToggleOutcome struct {
	ID        ItemID
	State     ToggleState
	Favorited bool // flag for ID after the request, committed or not
	Auth      AuthChallengeResult
}

// Severity grades a user-facing notification.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notification is a message for the presentation layer.
type Notification struct {
	Severity Severity
	Title    string
	Message  string
	ItemID   ItemID
}
