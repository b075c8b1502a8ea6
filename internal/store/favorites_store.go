package store

import (
	"context"
	"encoding/json"
	"fmt"

	"artpiece/internal/domain"
)

// FavoritesKey is the storage key holding the favorites mapping.
const FavoritesKey = "favorites"

// FavoritesStore persists the favorites mapping as one JSON object
// ({"<title>": true}) under FavoritesKey.
type FavoritesStore struct {
	kv domain.KeyValueStore
}

// NewFavoritesStore returns a FavoritesStore backed by kv.
func NewFavoritesStore(kv domain.KeyValueStore) *FavoritesStore {
	return &FavoritesStore{kv: kv}
}

// Load reads the persisted mapping. Absent data yields an empty set; data that
// does not decode as an object of booleans yields domain.ErrCorruptState.
func (s *FavoritesStore) Load(ctx context.Context) (domain.FavoriteSet, error) {
	b, ok, err := s.kv.Get(ctx, FavoritesKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrPersistence, FavoritesKey, err)
	}
	if !ok || len(b) == 0 {
		return domain.NewFavoriteSet(), nil
	}

	var set domain.FavoriteSet
	if err := json.Unmarshal(b, &set); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptState, err)
	}
	if set == nil { // stored literal null
		set = domain.NewFavoriteSet()
	}
	return set, nil
}

// Save overwrites the persisted mapping with set.
func (s *FavoritesStore) Save(ctx context.Context, set domain.FavoriteSet) error {
	if set == nil {
		set = domain.NewFavoriteSet()
	}
	b, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", domain.ErrPersistence, err)
	}
	if err := s.kv.Set(ctx, FavoritesKey, b); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// Compile-time assertion that FavoritesStore implements domain.FavoritesStore.
var _ domain.FavoritesStore = (*FavoritesStore)(nil)
