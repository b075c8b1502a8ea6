package biometric_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artpiece/internal/biometric"
	"artpiece/internal/domain"
	"artpiece/internal/logger"
	"artpiece/internal/store"
)

type fakeCreds struct {
	passphrase string
	enrolled   bool
	hasErr     error
}

func (f *fakeCreds) SaveCredential(string, domain.Credential) error { return nil }
func (f *fakeCreds) DeleteCredential() error                        { return nil }
func (f *fakeCreds) HasCredential() (bool, error)                   { return f.enrolled, f.hasErr }
func (f *fakeCreds) LoadCredential(p string) (domain.Credential, error) {
	if !f.enrolled {
		return domain.Credential{}, domain.ErrNotEnrolled
	}
	if p != f.passphrase {
		return domain.Credential{}, store.ErrWrongPassphrase
	}
	return domain.Credential{ID: "c"}, nil
}

// blockingReader never answers; it waits for the challenge deadline.
type blockingReader struct{}

func (blockingReader) Interactive() bool { return true }
func (blockingReader) ReadSecret(ctx context.Context, _ string) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type failingReader struct{}

func (failingReader) Interactive() bool { return true }
func (failingReader) ReadSecret(context.Context, string) ([]byte, error) {
	return nil, errors.New("tty gone")
}

func TestAuthenticate_Success(t *testing.T) {
	creds := &fakeCreds{passphrase: "Secret#Pass123", enrolled: true}
	a := biometric.NewTerminalAuthenticator(creds, biometric.NewStaticReader("Secret#Pass123"), 0)

	res, err := a.Authenticate(context.Background(), "Authenticate to toggle favorite")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, domain.AuthReasonNone, res.Reason)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	creds := &fakeCreds{passphrase: "right", enrolled: true}
	a := biometric.NewTerminalAuthenticator(creds, biometric.NewStaticReader("wrong"), 0)

	res, err := a.Authenticate(context.Background(), "p")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, domain.AuthReasonFailed, res.Reason)
}

func TestAuthenticate_EmptyAnswerIsCancel(t *testing.T) {
	creds := &fakeCreds{passphrase: "right", enrolled: true}
	a := biometric.NewTerminalAuthenticator(creds, biometric.NewLineReader(strings.NewReader("\n"), nil), 0)

	res, err := a.Authenticate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, domain.AuthReasonCancelled, res.Reason)
}

func TestAuthenticate_EOFIsCancel(t *testing.T) {
	creds := &fakeCreds{passphrase: "right", enrolled: true}
	a := biometric.NewTerminalAuthenticator(creds, biometric.NewLineReader(strings.NewReader(""), nil), 0)

	res, err := a.Authenticate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, domain.AuthReasonCancelled, res.Reason)
}

func TestAuthenticate_Timeout(t *testing.T) {
	creds := &fakeCreds{passphrase: "right", enrolled: true}
	a := biometric.NewTerminalAuthenticator(creds, blockingReader{}, 20*time.Millisecond)

	res, err := a.Authenticate(context.Background(), "p")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, domain.AuthReasonTimeout, res.Reason)
}

func TestAuthenticate_ReaderError(t *testing.T) {
	creds := &fakeCreds{passphrase: "right", enrolled: true}
	a := biometric.NewTerminalAuthenticator(creds, failingReader{}, 0)

	res, err := a.Authenticate(context.Background(), "p")
	assert.Error(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, domain.AuthReasonError, res.Reason)
}

func TestLineReader_TrimsCarriageReturn(t *testing.T) {
	r := biometric.NewLineReader(strings.NewReader("abc\r\nnext\n"), nil)
	b, err := r.ReadSecret(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(b))
}

func TestGate_IsAvailable(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name  string
		creds *fakeCreds
		want  bool
	}{
		{"enrolled", &fakeCreds{enrolled: true}, true},
		{"not enrolled", &fakeCreds{enrolled: false}, false},
		{"store error", &fakeCreds{enrolled: true, hasErr: errors.New("io")}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := biometric.NewTerminalAuthenticator(tc.creds, biometric.NewStaticReader("x"), 0)
			g := biometric.NewGate(a, logger.Discard())
			assert.Equal(t, tc.want, g.IsAvailable(ctx))
		})
	}
}

func TestGate_NoHardware(t *testing.T) {
	a := biometric.NewTerminalAuthenticator(&fakeCreds{enrolled: true}, nil, 0)
	g := biometric.NewGate(a, logger.Discard())
	assert.False(t, g.IsAvailable(context.Background()))
}

func TestGate_ChallengeErrorIsFailure(t *testing.T) {
	a := biometric.NewTerminalAuthenticator(&fakeCreds{enrolled: true}, failingReader{}, 0)
	g := biometric.NewGate(a, logger.Discard())

	res := g.Challenge(context.Background(), "p")
	assert.False(t, res.Success)
	assert.Equal(t, domain.AuthReasonError, res.Reason)
}
