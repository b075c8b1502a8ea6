package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"artpiece/internal/domain"
	"artpiece/internal/util/memzero"
)

const credentialFilename = "credential.json.enc"

// CredentialFileStore persists the enrolled credential, sealed under the
// user's passphrase.
type CredentialFileStore struct {
	dir    string
	mu     sync.Mutex
	params func() (N, r, p int)
}

// NewCredentialFileStore returns a CredentialFileStore rooted at dir.
func NewCredentialFileStore(dir string) *CredentialFileStore {
	return &CredentialFileStore{dir: dir, params: scryptParamsDefault}
}

// SaveCredential seals cred with passphrase and writes it to disk.
func (s *CredentialFileStore) SaveCredential(passphrase string, cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(cred)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	N, r, p := s.params()
	ct, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFile(s.path(), ct, 0o600)
}

// LoadCredential reads and unseals the credential.
func (s *CredentialFileStore) LoadCredential(passphrase string) (domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path())
	if err != nil {
		return domain.Credential{}, err
	}
	if b == nil {
		return domain.Credential{}, domain.ErrNotEnrolled
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return domain.Credential{}, err
	}
	defer memzero.Zero(pt)

	var cred domain.Credential
	if err := json.Unmarshal(pt, &cred); err != nil {
		return domain.Credential{}, err
	}
	return cred, nil
}

// HasCredential reports whether a credential file exists.
func (s *CredentialFileStore) HasCredential() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteCredential removes the credential file.
func (s *CredentialFileStore) DeleteCredential() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return removeFile(s.path())
}

func (s *CredentialFileStore) path() string {
	return filepath.Join(s.dir, credentialFilename)
}

// Compile-time assertion that CredentialFileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*CredentialFileStore)(nil)
