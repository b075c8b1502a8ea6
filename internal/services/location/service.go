package location

import (
	"context"
	"fmt"
	"log/slog"

	"artpiece/internal/domain"
)

// PermissionQuestion is asked the first time a position is requested.
const PermissionQuestion = "Allow artpiece to access your location?"

// Service gates a Locator behind a remembered permission.
type Service struct {
	locator  domain.Locator
	perms    domain.PermissionStore
	prompter domain.Prompter
	log      *slog.Logger
}

// New returns a location service.
func New(
	locator domain.Locator,
	perms domain.PermissionStore,
	prompter domain.Prompter,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{locator: locator, perms: perms, prompter: prompter, log: log}
}

// RequestPermission returns the stored answer, asking the user only when no
// answer is stored yet.
func (s *Service) RequestPermission(ctx context.Context) (domain.PermissionStatus, error) {
	status, err := s.perms.LoadPermission(ctx)
	if err != nil {
		return domain.PermissionUndetermined, fmt.Errorf("load permission: %w", err)
	}
	if status != domain.PermissionUndetermined {
		return status, nil
	}

	ok, err := s.prompter.Confirm(ctx, PermissionQuestion)
	if err != nil {
		return domain.PermissionUndetermined, fmt.Errorf("ask permission: %w", err)
	}
	status = domain.PermissionDenied
	if ok {
		status = domain.PermissionGranted
	}
	if err := s.perms.SavePermission(ctx, status); err != nil {
		s.log.WarnContext(ctx, "permission answer not saved", slog.Any("error", err))
	}
	return status, nil
}

// ResetPermission forgets the stored answer so the next read asks again.
func (s *Service) ResetPermission(ctx context.Context) error {
	return s.perms.SavePermission(ctx, domain.PermissionUndetermined)
}

// Current asks for permission and reads the position once.
func (s *Service) Current(ctx context.Context) (domain.Position, error) {
	status, err := s.RequestPermission(ctx)
	if err != nil {
		return domain.Position{}, err
	}
	if status != domain.PermissionGranted {
		return domain.Position{}, domain.ErrPermissionDenied
	}
	pos, err := s.locator.CurrentPosition(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "position read failed", slog.Any("error", err))
		return domain.Position{}, err
	}
	return pos, nil
}

// Compile-time assertion that Service implements domain.LocationService.
var _ domain.LocationService = (*Service)(nil)
