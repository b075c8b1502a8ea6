package interfaces

import (
	"context"

	domaintypes "artpiece/internal/domain/types"
)

// BiometricGate answers whether authentication is possible and runs one challenge.
type BiometricGate interface {
	IsAvailable(ctx context.Context) bool
	Challenge(ctx context.Context, prompt string) domaintypes.AuthChallengeResult
}

// EnrollmentService creates and removes the local credential.
type EnrollmentService interface {
	Enroll(ctx context.Context, passphrase string) (domaintypes.Credential, domaintypes.Fingerprint, error)
	Unenroll(ctx context.Context) error
	Fingerprint(passphrase string) (domaintypes.Fingerprint, error)
}

// FavoritesWorkflow toggles favorites behind a successful authentication.
type FavoritesWorkflow interface {
	Load(ctx context.Context) error
	IsFavorite(id domaintypes.ItemID) bool
	Snapshot() domaintypes.FavoriteSet
	Toggle(ctx context.Context, id domaintypes.ItemID) (domaintypes.ToggleOutcome, error)
}

// CatalogService lists the identifiers of the remote catalog.
type CatalogService interface {
	Titles(ctx context.Context) ([]domaintypes.ItemID, error)
}

// LocationService reads the device location after asking for permission.
type LocationService interface {
	Current(ctx context.Context) (domaintypes.Position, error)
}
