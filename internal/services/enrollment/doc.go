// Package enrollment manages creation, sealing and removal of the local
// authentication credential.
//
// It enforces passphrase policy, generates a random verifier secret, and
// persists it via the domain.CredentialStore. The authenticator later proves
// the user knows the passphrase by unsealing that credential.
package enrollment
