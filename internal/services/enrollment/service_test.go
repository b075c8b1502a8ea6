package enrollment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artpiece/internal/domain"
	"artpiece/internal/store"
)

// memCreds keeps the credential in memory, checking the passphrase on load.
type memCreds struct {
	pass string
	cred *domain.Credential
}

func (m *memCreds) SaveCredential(p string, c domain.Credential) error {
	m.pass, m.cred = p, &c
	return nil
}

func (m *memCreds) LoadCredential(p string) (domain.Credential, error) {
	if m.cred == nil {
		return domain.Credential{}, domain.ErrNotEnrolled
	}
	if p != m.pass {
		return domain.Credential{}, store.ErrWrongPassphrase
	}
	return *m.cred, nil
}

func (m *memCreds) HasCredential() (bool, error) { return m.cred != nil, nil }
func (m *memCreds) DeleteCredential() error      { m.cred = nil; return nil }

const strong = "Correct#Horse9Battery"

func TestEnroll_OK(t *testing.T) {
	creds := &memCreds{}
	svc := New(creds, "device-42")
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	cred, fp, err := svc.Enroll(context.Background(), strong)
	require.NoError(t, err)
	assert.Equal(t, "device-42", cred.DeviceID)
	assert.Len(t, cred.Secret, 32)
	assert.NotEmpty(t, cred.ID)
	assert.Len(t, fp.String(), 20)

	got, err := svc.Fingerprint(strong)
	require.NoError(t, err)
	assert.Equal(t, fp, got)
}

func TestEnroll_GeneratesDeviceID(t *testing.T) {
	cred, _, err := New(&memCreds{}, "").Enroll(context.Background(), strong)
	require.NoError(t, err)
	assert.NotEmpty(t, cred.DeviceID)
}

func TestEnroll_WeakPassphrase(t *testing.T) {
	creds := &memCreds{}
	for _, p := range []string{"", "short1!A", "alllowercase123!", "NoDigitsHere!!", "NoSymbols12345"} {
		_, _, err := New(creds, "").Enroll(context.Background(), p)
		assert.ErrorIs(t, err, ErrWeakPassphrase, p)
	}
	assert.Nil(t, creds.cred)
}

func TestUnenroll(t *testing.T) {
	creds := &memCreds{}
	svc := New(creds, "")
	_, _, err := svc.Enroll(context.Background(), strong)
	require.NoError(t, err)

	require.NoError(t, svc.Unenroll(context.Background()))
	_, err = svc.Fingerprint(strong)
	assert.ErrorIs(t, err, domain.ErrNotEnrolled)
}
