// Package biometric is the local-authentication boundary of artpiece.
//
// A desktop has no fingerprint API to call, so the platform capability is
// modelled by TerminalAuthenticator: "hardware" is an interactive secret
// source, "enrollment" is a credential sealed in the credential store, and a
// challenge is one prompt whose answer must unseal that credential.
//
// Gate wraps any domain.Authenticator and reduces it to the two questions the
// favorites workflow asks: is authentication possible at all, and did this one
// attempt succeed. Gate never retries.
package biometric
