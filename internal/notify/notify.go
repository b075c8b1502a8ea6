// Package notify delivers workflow notifications to the user.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"artpiece/internal/domain"
)

// WriterNotifier prints notifications as "Title: message" lines, the terminal
// stand-in for an alert dialog.
type WriterNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterNotifier returns a notifier writing to out.
func NewWriterNotifier(out io.Writer) *WriterNotifier {
	return &WriterNotifier{out: out}
}

// Notify writes n.
func (w *WriterNotifier) Notify(_ context.Context, n domain.Notification) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, "%s: %s\n", n.Title, n.Message)
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu   sync.Mutex
	list []domain.Notification
}

// Notify records n.
func (r *Recorder) Notify(_ context.Context, n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, n)
}

// All returns a copy of the recorded notifications in arrival order.
func (r *Recorder) All() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.list...)
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (domain.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.list) == 0 {
		return domain.Notification{}, false
	}
	return r.list[len(r.list)-1], true
}

var (
	_ domain.Notifier = (*WriterNotifier)(nil)
	_ domain.Notifier = (*Recorder)(nil)
)
