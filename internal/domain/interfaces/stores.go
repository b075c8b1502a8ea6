package interfaces

import (
	"context"

	domaintypes "artpiece/internal/domain/types"
)

// KeyValueStore is the device's local key-value persistence.
//
// Get reports ok=false for a key that was never written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// FavoritesStore persists the whole favorites mapping.
type FavoritesStore interface {
	Load(ctx context.Context) (domaintypes.FavoriteSet, error)
	Save(ctx context.Context, set domaintypes.FavoriteSet) error
}

// CredentialStore persists the enrolled authentication credential.
type CredentialStore interface {
	SaveCredential(passphrase string, cred domaintypes.Credential) error
	// LoadCredential unseals the credential. A wrong passphrase yields an error.
	LoadCredential(passphrase string) (domaintypes.Credential, error)
	HasCredential() (bool, error)
	DeleteCredential() error
}

// PermissionStore remembers the user's answer to a permission request.
type PermissionStore interface {
	LoadPermission(ctx context.Context) (domaintypes.PermissionStatus, error)
	SavePermission(ctx context.Context, status domaintypes.PermissionStatus) error
}
