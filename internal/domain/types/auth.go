package types

import "time"

// AuthReason explains why a challenge did not succeed.
type AuthReason string

const (
	AuthReasonNone      AuthReason = ""
	AuthReasonFailed    AuthReason = "failed"
	AuthReasonCancelled AuthReason = "cancelled"
	AuthReasonTimeout   AuthReason = "timeout"
	AuthReasonError     AuthReason = "error"
)

// String returns the string form of the reason.
func (r AuthReason) String() string { return string(r) }

// AuthChallengeResult is the outcome of exactly one authentication prompt.
// Reason is AuthReasonNone when Success is true.
type AuthChallengeResult struct {
	Success bool       `json:"success"`
	Reason  AuthReason `json:"reason,omitempty"`
}

// Credential is the enrolled local authentication credential.
//
// Secret is the random verifier sealed under the user's passphrase; it never
// leaves the credential store unsealed.
type Credential struct {
	ID         CredentialID `json:"id"`
	DeviceID   string       `json:"device_id"`
	Secret     []byte       `json:"secret"`
	EnrolledAt time.Time    `json:"enrolled_at"`
}
