package biometric

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"artpiece/internal/domain"
	"artpiece/internal/store"
	"artpiece/internal/util/memzero"
)

// DefaultPromptTimeout bounds how long one challenge waits for the user.
const DefaultPromptTimeout = 60 * time.Second

// TerminalAuthenticator implements domain.Authenticator on top of a
// SecretReader and the sealed credential.
type TerminalAuthenticator struct {
	creds   domain.CredentialStore
	reader  SecretReader
	timeout time.Duration
}

// NewTerminalAuthenticator returns an authenticator. A zero timeout uses
// DefaultPromptTimeout.
func NewTerminalAuthenticator(
	creds domain.CredentialStore,
	reader SecretReader,
	timeout time.Duration,
) *TerminalAuthenticator {
	if timeout <= 0 {
		timeout = DefaultPromptTimeout
	}
	return &TerminalAuthenticator{creds: creds, reader: reader, timeout: timeout}
}

// HasHardware reports whether the user can be prompted.
func (a *TerminalAuthenticator) HasHardware(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return a.reader != nil && a.reader.Interactive(), nil
}

// IsEnrolled reports whether a credential exists.
func (a *TerminalAuthenticator) IsEnrolled(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return a.creds.HasCredential()
}

type readResult struct {
	secret []byte
	err    error
}

// Authenticate runs one prompt. It never asks twice.
func (a *TerminalAuthenticator) Authenticate(
	ctx context.Context,
	prompt string,
) (domain.AuthChallengeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// The read runs on its own goroutine so the deadline can fire while the
	// user is still typing; a terminal read cannot be interrupted.
	done := make(chan readResult, 1)
	go func() {
		secret, err := a.reader.ReadSecret(ctx, prompt)
		done <- readResult{secret: secret, err: err}
	}()

	var res readResult
	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return rejected(domain.AuthReasonTimeout), nil
		}
		return rejected(domain.AuthReasonCancelled), nil
	case res = <-done:
	}
	defer memzero.Zero(res.secret)

	switch {
	case errors.Is(res.err, io.EOF), errors.Is(res.err, context.Canceled):
		return rejected(domain.AuthReasonCancelled), nil
	case errors.Is(res.err, context.DeadlineExceeded):
		return rejected(domain.AuthReasonTimeout), nil
	case res.err != nil:
		return rejected(domain.AuthReasonError), fmt.Errorf("read secret: %w", res.err)
	case len(res.secret) == 0:
		return rejected(domain.AuthReasonCancelled), nil
	}

	if _, err := a.creds.LoadCredential(string(res.secret)); err != nil {
		if errors.Is(err, store.ErrWrongPassphrase) {
			return rejected(domain.AuthReasonFailed), nil
		}
		return rejected(domain.AuthReasonError), fmt.Errorf("verify credential: %w", err)
	}
	return domain.AuthChallengeResult{Success: true}, nil
}

func rejected(reason domain.AuthReason) domain.AuthChallengeResult {
	return domain.AuthChallengeResult{Success: false, Reason: reason}
}

// Compile-time assertion that TerminalAuthenticator implements domain.Authenticator.
var _ domain.Authenticator = (*TerminalAuthenticator)(nil)
