package store

import (
	"context"
	"encoding/json"
	"fmt"

	"artpiece/internal/domain"
)

// PermissionKey is the storage key holding the location permission answer.
const PermissionKey = "location_permission"

type permissionRecord struct {
	Status domain.PermissionStatus `json:"status"`
}

// PermissionStore remembers whether location access was granted.
type PermissionStore struct {
	kv domain.KeyValueStore
}

// NewPermissionStore returns a PermissionStore backed by kv.
func NewPermissionStore(kv domain.KeyValueStore) *PermissionStore {
	return &PermissionStore{kv: kv}
}

// LoadPermission returns the stored answer, or PermissionUndetermined.
func (s *PermissionStore) LoadPermission(ctx context.Context) (domain.PermissionStatus, error) {
	b, ok, err := s.kv.Get(ctx, PermissionKey)
	if err != nil {
		return domain.PermissionUndetermined, err
	}
	if !ok {
		return domain.PermissionUndetermined, nil
	}
	var rec permissionRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.PermissionUndetermined, fmt.Errorf("decode %s: %w", PermissionKey, err)
	}
	return rec.Status, nil
}

// SavePermission records status. PermissionUndetermined clears the record.
func (s *PermissionStore) SavePermission(ctx context.Context, status domain.PermissionStatus) error {
	if status == domain.PermissionUndetermined {
		return s.kv.Delete(ctx, PermissionKey)
	}
	b, err := json.Marshal(permissionRecord{Status: status})
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, PermissionKey, b)
}

// Compile-time assertion that PermissionStore implements domain.PermissionStore.
var _ domain.PermissionStore = (*PermissionStore)(nil)
