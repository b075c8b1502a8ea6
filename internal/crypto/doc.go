// Package crypto exposes the minimal primitives used by artpiece.
//
// Contents
//
//   - Random verifier secrets for the enrolled credential (NewSecret)
//   - Short fingerprints for display/logging (Fingerprint)
//
// Sealing the credential under a passphrase lives in internal/store next to
// the file format it produces.
package crypto
