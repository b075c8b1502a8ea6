package favorites

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"artpiece/internal/domain"
)

// DefaultPrompt is shown by the authenticator on every toggle.
const DefaultPrompt = "Authenticate to toggle favorite"

// Notification copy shown to the user.
const (
	titleAuthError    = "Authentication Error"
	msgAuthError      = "Fingerprint authentication is not available on this device."
	titleAuthFailed   = "Authentication Failed"
	msgAuthFailed     = "Could not authenticate user."
	titleSaveFailed   = "Save Failed"
	titleFavorited    = "Favorite"
	titleUnfavorited  = "Unfavorite"
	titleCorruptState = "Favorites Reset"
	msgCorruptState   = "Saved favorites could not be read and were reset."
)

// TransitionFunc observes state changes of a toggle request.
type TransitionFunc func(id domain.ItemID, from, to domain.ToggleState)

// Option configures a Service.
type Option func(*Service)

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(s *Service) { s.prompt = prompt }
}

// WithTransitionHook registers fn to observe every state change.
func WithTransitionHook(fn TransitionFunc) Option {
	return func(s *Service) { s.onTransition = fn }
}

// Service owns the session's favorite set and mutates it only through Toggle.
type Service struct {
	gate         domain.BiometricGate
	store        domain.FavoritesStore
	notifier     domain.Notifier
	log          *slog.Logger
	prompt       string
	onTransition TransitionFunc

	mu       sync.Mutex // guards set and inFlight
	set      domain.FavoriteSet
	inFlight map[domain.ItemID]struct{}

	commitMu sync.Mutex // one read-flip-save at a time
}

// New returns a workflow over gate and store. The set starts empty; call Load
// once at session start.
func New(
	gate domain.BiometricGate,
	store domain.FavoritesStore,
	notifier domain.Notifier,
	log *slog.Logger,
	opts ...Option,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		gate:     gate,
		store:    store,
		notifier: notifier,
		log:      log,
		prompt:   DefaultPrompt,
		set:      domain.NewFavoriteSet(),
		inFlight: make(map[domain.ItemID]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted set. Corrupt data is logged and replaced by an
// empty set; any other storage error is returned and the set stays empty.
func (s *Service) Load(ctx context.Context) error {
	set, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrCorruptState):
		s.log.WarnContext(ctx, "favorites corrupt, starting empty", slog.Any("error", err))
		s.notify(ctx, domain.Notification{
			Severity: domain.SeverityError,
			Title:    titleCorruptState,
			Message:  msgCorruptState,
		})
		set = domain.NewFavoriteSet()
	case err != nil:
		return fmt.Errorf("load favorites: %w", err)
	}

	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
	s.log.DebugContext(ctx, "favorites loaded", slog.Int("count", len(set)))
	return nil
}

// IsFavorite reports the committed flag for id.
func (s *Service) IsFavorite(id domain.ItemID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.IsFavorite(id)
}

// Snapshot returns a copy of the committed set.
func (s *Service) Snapshot() domain.FavoriteSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Clone()
}

// Toggle flips the flag for id after one successful authentication.
//
// The returned outcome is always populated. The error is nil only when the
// toggle committed; otherwise it wraps domain.ErrAuthUnavailable,
// domain.ErrAuthRejected, domain.ErrPersistence or domain.ErrToggleInFlight.
// Every terminal state except the in-flight refusal also produces a
// notification.
func (s *Service) Toggle(ctx context.Context, id domain.ItemID) (domain.ToggleOutcome, error) {
	if id == "" {
		return domain.ToggleOutcome{ID: id, State: domain.ToggleRejected}, errors.New("empty item id")
	}
	if !s.begin(id) {
		return s.outcome(id, domain.ToggleRejected, domain.AuthChallengeResult{}),
			fmt.Errorf("%w: %q", domain.ErrToggleInFlight, id)
	}
	defer s.end(id)

	log := s.log.With(slog.String("item", id.String()))
	state := domain.ToggleIdle
	move := func(to domain.ToggleState) {
		log.DebugContext(ctx, "toggle transition", slog.String("from", state.String()), slog.String("to", to.String()))
		if s.onTransition != nil {
			s.onTransition(id, state, to)
		}
		state = to
	}

	move(domain.ToggleChecking)
	if !s.gate.IsAvailable(ctx) {
		move(domain.ToggleRejected)
		s.notify(ctx, domain.Notification{
			Severity: domain.SeverityError,
			Title:    titleAuthError,
			Message:  msgAuthError,
			ItemID:   id,
		})
		return s.outcome(id, state, domain.AuthChallengeResult{}), domain.ErrAuthUnavailable
	}

	move(domain.ToggleChallenging)
	auth := s.gate.Challenge(ctx, s.prompt)
	if !auth.Success {
		move(domain.ToggleRejected)
		s.notify(ctx, domain.Notification{
			Severity: domain.SeverityError,
			Title:    titleAuthFailed,
			Message:  rejectionMessage(auth.Reason),
			ItemID:   id,
		})
		err := domain.ErrAuthRejected
		if auth.Reason != domain.AuthReasonFailed {
			err = fmt.Errorf("%w: %s", domain.ErrAuthRejected, auth.Reason)
		}
		return s.outcome(id, state, auth), err
	}

	move(domain.ToggleCommitting)
	favorited, err := s.commit(ctx, id)
	if err != nil {
		move(domain.ToggleFailed)
		log.ErrorContext(ctx, "favorite not saved", slog.Any("error", err))
		s.notify(ctx, domain.Notification{
			Severity: domain.SeverityError,
			Title:    titleSaveFailed,
			Message:  fmt.Sprintf("%q could not be saved; nothing was changed.", id),
			ItemID:   id,
		})
		return s.outcome(id, state, auth), err
	}

	move(domain.ToggleCommitted)
	title, verb := titleFavorited, "added to"
	if !favorited {
		title, verb = titleUnfavorited, "removed from"
	}
	s.notify(ctx, domain.Notification{
		Severity: domain.SeverityInfo,
		Title:    title,
		Message:  fmt.Sprintf("%q %s favorites.", id, verb),
		ItemID:   id,
	})
	log.InfoContext(ctx, "favorite toggled", slog.Bool("favorited", favorited))
	return domain.ToggleOutcome{ID: id, State: state, Favorited: favorited, Auth: auth}, nil
}

// commit computes the flipped set from the latest committed set, saves it,
// and only then publishes it.
func (s *Service) commit(ctx context.Context, id domain.ItemID) (bool, error) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	next := s.Snapshot().Toggled(id)
	if err := s.store.Save(ctx, next); err != nil {
		if !errors.Is(err, domain.ErrPersistence) {
			err = fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		return false, err
	}

	s.mu.Lock()
	s.set = next
	s.mu.Unlock()
	return next.IsFavorite(id), nil
}

func (s *Service) begin(id domain.ItemID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[id]; busy {
		return false
	}
	s.inFlight[id] = struct{}{}
	return true
}

func (s *Service) end(id domain.ItemID) {
	s.mu.Lock()
	delete(s.inFlight, id)
	s.mu.Unlock()
}

func (s *Service) outcome(id domain.ItemID, state domain.ToggleState, auth domain.AuthChallengeResult) domain.ToggleOutcome {
	return domain.ToggleOutcome{ID: id, State: state, Favorited: s.IsFavorite(id), Auth: auth}
}

func (s *Service) notify(ctx context.Context, n domain.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}

// rejectionMessage appends the reason to msgAuthFailed when it adds information.
func rejectionMessage(reason domain.AuthReason) string {
	switch reason {
	case domain.AuthReasonCancelled:
		return msgAuthFailed + " (cancelled)"
	case domain.AuthReasonTimeout:
		return msgAuthFailed + " (timed out)"
	case domain.AuthReasonError:
		return msgAuthFailed + " (authenticator error)"
	default:
		return msgAuthFailed
	}
}

// Compile-time assertion that Service implements domain.FavoritesWorkflow.
var _ domain.FavoritesWorkflow = (*Service)(nil)
