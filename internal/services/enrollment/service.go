package enrollment

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/google/uuid"

	"artpiece/internal/crypto"
	"artpiece/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages the enrolled credential using a backing store.
type Service struct {
	store    domain.CredentialStore
	deviceID string
	now      func() time.Time
}

// New returns an enrollment service backed by the given store. deviceID tags
// the credential; an empty value generates one per enrollment.
func New(s domain.CredentialStore, deviceID string) *Service {
	return &Service{store: s, deviceID: deviceID, now: time.Now}
}

// Enroll creates a new credential sealed with passphrase, replacing any
// previous one, and returns it with its fingerprint.
func (s *Service) Enroll(
	ctx context.Context,
	passphrase string,
) (domain.Credential, domain.Fingerprint, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, "", err
	}
	if !isSecurePassphrase(passphrase) {
		return domain.Credential{}, "", ErrWeakPassphrase
	}

	secret, err := crypto.NewSecret()
	if err != nil {
		return domain.Credential{}, "", err
	}
	deviceID := s.deviceID
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	cred := domain.Credential{
		ID:         domain.CredentialID(uuid.NewString()),
		DeviceID:   deviceID,
		Secret:     secret,
		EnrolledAt: s.now().UTC(),
	}
	if err := s.store.SaveCredential(passphrase, cred); err != nil {
		return domain.Credential{}, "", fmt.Errorf("save credential: %w", err)
	}
	return cred, fingerprint(cred), nil
}

// Unenroll removes the credential. Authentication is unavailable afterwards.
func (s *Service) Unenroll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteCredential()
}

// Fingerprint returns a short fingerprint of the enrolled credential.
func (s *Service) Fingerprint(passphrase string) (domain.Fingerprint, error) {
	cred, err := s.store.LoadCredential(passphrase)
	if err != nil {
		return "", err
	}
	return fingerprint(cred), nil
}

func fingerprint(cred domain.Credential) domain.Fingerprint {
	return domain.Fingerprint(crypto.Fingerprint(cred.Secret))
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.EnrollmentService.
var _ domain.EnrollmentService = (*Service)(nil)
