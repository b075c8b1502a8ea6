package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artpiece/internal/domain"
	"artpiece/internal/store"
)

func newCredentialStore(t *testing.T) *store.CredentialFileStore {
	t.Helper()
	cs := store.NewCredentialFileStore(t.TempDir())
	store.UseFastKDF(cs)
	return cs
}

func TestCredential_SaveLoad_OK(t *testing.T) {
	cs := newCredentialStore(t)

	cred := domain.Credential{
		ID:         "cred-1",
		DeviceID:   "device-1",
		Secret:     []byte{1, 2, 3, 4},
		EnrolledAt: time.Unix(1700000000, 0).UTC(),
	}
	require.NoError(t, cs.SaveCredential("pass", cred))

	ok, err := cs.HasCredential()
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := cs.LoadCredential("pass")
	require.NoError(t, err)
	assert.Equal(t, cred.ID, got.ID)
	assert.Equal(t, cred.Secret, got.Secret)
	assert.True(t, cred.EnrolledAt.Equal(got.EnrolledAt))
}

func TestCredential_WrongPassphrase_Fails(t *testing.T) {
	cs := newCredentialStore(t)
	require.NoError(t, cs.SaveCredential("correct", domain.Credential{ID: "c"}))

	_, err := cs.LoadCredential("wrong")
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestCredential_Missing(t *testing.T) {
	cs := newCredentialStore(t)

	ok, err := cs.HasCredential()
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = cs.LoadCredential("pass")
	assert.ErrorIs(t, err, domain.ErrNotEnrolled)
}

func TestCredential_Delete(t *testing.T) {
	cs := newCredentialStore(t)
	require.NoError(t, cs.SaveCredential("pass", domain.Credential{ID: "c"}))
	require.NoError(t, cs.DeleteCredential())
	require.NoError(t, cs.DeleteCredential())

	ok, err := cs.HasCredential()
	require.NoError(t, err)
	assert.False(t, ok)
}
