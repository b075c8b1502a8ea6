package crypto

import "crypto/rand"

// SecretBytes is the size of a credential verifier secret.
const SecretBytes = 32

// NewSecret returns SecretBytes bytes from the system CSPRNG.
func NewSecret() ([]byte, error) {
	b := make([]byte, SecretBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
