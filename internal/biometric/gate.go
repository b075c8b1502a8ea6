package biometric

import (
	"context"
	"log/slog"

	"artpiece/internal/domain"
)

// Gate reduces a platform authenticator to an availability check and a
// one-shot challenge.
type Gate struct {
	auth domain.Authenticator
	log  *slog.Logger
}

// NewGate returns a Gate over auth.
func NewGate(auth domain.Authenticator, log *slog.Logger) *Gate {
	if log == nil {
		log = slog.Default()
	}
	return &Gate{auth: auth, log: log}
}

// IsAvailable is true only when hardware is present and a credential is
// enrolled. A failing capability query counts as unavailable.
func (g *Gate) IsAvailable(ctx context.Context) bool {
	hw, err := g.auth.HasHardware(ctx)
	if err != nil {
		g.log.WarnContext(ctx, "authentication hardware query failed", slog.Any("error", err))
		return false
	}
	if !hw {
		return false
	}
	enrolled, err := g.auth.IsEnrolled(ctx)
	if err != nil {
		g.log.WarnContext(ctx, "enrollment query failed", slog.Any("error", err))
		return false
	}
	return enrolled
}

// Challenge runs exactly one authentication attempt. Anything but an explicit
// success comes back as Success=false.
func (g *Gate) Challenge(ctx context.Context, prompt string) domain.AuthChallengeResult {
	res, err := g.auth.Authenticate(ctx, prompt)
	if err != nil {
		g.log.ErrorContext(ctx, "authentication challenge failed", slog.Any("error", err))
		return domain.AuthChallengeResult{Success: false, Reason: domain.AuthReasonError}
	}
	if !res.Success {
		if res.Reason == domain.AuthReasonNone {
			res.Reason = domain.AuthReasonFailed
		}
		g.log.InfoContext(ctx, "authentication rejected", slog.String("reason", res.Reason.String()))
		return res
	}
	return domain.AuthChallengeResult{Success: true}
}

// Compile-time assertion that Gate implements domain.BiometricGate.
var _ domain.BiometricGate = (*Gate)(nil)
