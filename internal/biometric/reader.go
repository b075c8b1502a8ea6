package biometric

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// SecretReader obtains the user's secret for one challenge.
type SecretReader interface {
	// Interactive reports whether a user can be asked at all.
	Interactive() bool
	// ReadSecret shows prompt and returns what the user typed. An empty
	// answer or io.EOF means the user cancelled.
	ReadSecret(ctx context.Context, prompt string) ([]byte, error)
}

// TTYReader reads a hidden secret from a terminal.
type TTYReader struct {
	in  *os.File
	out io.Writer
}

// NewTTYReader returns a reader bound to in (normally os.Stdin) that writes
// its prompt to out.
func NewTTYReader(in *os.File, out io.Writer) *TTYReader {
	return &TTYReader{in: in, out: out}
}

// Interactive reports whether in is a terminal.
func (r *TTYReader) Interactive() bool {
	return r.in != nil && term.IsTerminal(int(r.in.Fd()))
}

// ReadSecret reads one line without echo.
func (r *TTYReader) ReadSecret(ctx context.Context, prompt string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fmt.Fprintf(r.out, "%s: ", prompt)
	b, err := term.ReadPassword(int(r.in.Fd()))
	fmt.Fprintln(r.out)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// StaticReader answers every challenge with a preset secret, for scripted
// use with --passphrase or ARTPIECE_PASSPHRASE.
type StaticReader struct {
	secret string
}

// NewStaticReader returns a StaticReader for secret.
func NewStaticReader(secret string) *StaticReader { return &StaticReader{secret: secret} }

// Interactive is always true: the answer is already known.
func (r *StaticReader) Interactive() bool { return true }

// ReadSecret returns the preset secret.
func (r *StaticReader) ReadSecret(ctx context.Context, _ string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(r.secret), nil
}

// LineReader reads the secret as a plain line from any reader. It backs
// non-terminal stdin (pipes) and tests.
type LineReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewLineReader returns a LineReader over in that writes prompts to out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{sc: bufio.NewScanner(in), out: out}
}

// Interactive is always true: a line can be read.
func (r *LineReader) Interactive() bool { return true }

// ReadSecret reads the next line.
func (r *LineReader) ReadSecret(ctx context.Context, prompt string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.out != nil {
		fmt.Fprintf(r.out, "%s: ", prompt)
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return []byte(strings.TrimRight(r.sc.Text(), "\r")), nil
}

var (
	_ SecretReader = (*TTYReader)(nil)
	_ SecretReader = (*StaticReader)(nil)
	_ SecretReader = (*LineReader)(nil)
)
