// Package store provides local persistence for artpiece.
//
// It contains concrete implementations of the domain storage interfaces.
// Values are serialised as JSON and kept in a key-value backend: one file per
// key under the user's configured home directory (FileKV), or a Redis
// instance (RedisKV) when several terminals should share state. All methods
// are concurrency-safe.
//
// The package includes stores for:
//   - Favorite flags (FavoritesStore, key "favorites")
//   - The location permission answer (PermissionStore, key "location_permission")
//   - The enrolled authentication credential (CredentialFileStore, sealed on disk)
package store
