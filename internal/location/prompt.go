package location

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"artpiece/internal/domain"
)

// LinePrompter asks a yes/no question on out and reads the answer from in.
// Anything but "y" or "yes" is a no.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a prompter over in and out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks question once.
func (p *LinePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// FixedPrompter answers every question the same way (--yes / --no).
type FixedPrompter bool

// Confirm returns the fixed answer.
func (p FixedPrompter) Confirm(context.Context, string) (bool, error) { return bool(p), nil }

var (
	_ domain.Prompter = (*LinePrompter)(nil)
	_ domain.Prompter = FixedPrompter(false)
)
