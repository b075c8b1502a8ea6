package domain

import (
	interfaces "artpiece/internal/domain/interfaces"
	types "artpiece/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ItemID              = types.ItemID
	Fingerprint         = types.Fingerprint
	CredentialID        = types.CredentialID
	CatalogItem         = types.CatalogItem
	FavoriteSet         = types.FavoriteSet
	AuthReason          = types.AuthReason
	AuthChallengeResult = types.AuthChallengeResult
	Credential          = types.Credential
	Position            = types.Position
	PermissionStatus    = types.PermissionStatus
	ToggleState         = types.ToggleState
	ToggleOutcome       = types.ToggleOutcome
	Severity            = types.Severity
	Notification        = types.Notification
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyValueStore     = interfaces.KeyValueStore
	FavoritesStore    = interfaces.FavoritesStore
	CredentialStore   = interfaces.CredentialStore
	PermissionStore   = interfaces.PermissionStore
	Authenticator     = interfaces.Authenticator
	CatalogClient     = interfaces.CatalogClient
	Locator           = interfaces.Locator
	Prompter          = interfaces.Prompter
	Notifier          = interfaces.Notifier
	BiometricGate     = interfaces.BiometricGate
	EnrollmentService = interfaces.EnrollmentService
	FavoritesWorkflow = interfaces.FavoritesWorkflow
	CatalogService    = interfaces.CatalogService
	LocationService   = interfaces.LocationService
)

// Constants re-exported from the types subpackage.
const (
	AuthReasonNone      = types.AuthReasonNone
	AuthReasonFailed    = types.AuthReasonFailed
	AuthReasonCancelled = types.AuthReasonCancelled
	AuthReasonTimeout   = types.AuthReasonTimeout
	AuthReasonError     = types.AuthReasonError

	PermissionUndetermined = types.PermissionUndetermined
	PermissionGranted      = types.PermissionGranted
	PermissionDenied       = types.PermissionDenied

	ToggleIdle        = types.ToggleIdle
	ToggleChecking    = types.ToggleChecking
	ToggleChallenging = types.ToggleChallenging
	ToggleCommitting  = types.ToggleCommitting
	ToggleCommitted   = types.ToggleCommitted
	ToggleRejected    = types.ToggleRejected
	ToggleFailed      = types.ToggleFailed

	SeverityInfo  = types.SeverityInfo
	SeverityError = types.SeverityError
)

// NewFavoriteSet returns an empty FavoriteSet.
func NewFavoriteSet() FavoriteSet { return types.NewFavoriteSet() }
