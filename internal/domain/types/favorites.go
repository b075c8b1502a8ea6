package types

import "sort"

// FavoriteSet maps item identifiers to their favorite flag.
//
// A missing key means "not a favorite". Read flags through IsFavorite rather
// than indexing the map so that convention stays in one place.
type FavoriteSet map[ItemID]bool

// NewFavoriteSet returns an empty set.
func NewFavoriteSet() FavoriteSet { return FavoriteSet{} }

// IsFavorite reports whether id is flagged. Absent ids are not favorites.
func (s FavoriteSet) IsFavorite(id ItemID) bool {
	if s == nil {
		return false
	}
	return s[id]
}

// Clone returns an independent copy of s. A nil set clones to an empty one.
func (s FavoriteSet) Clone() FavoriteSet {
	out := make(FavoriteSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Toggled returns a copy of s with the flag for id flipped. s is not modified.
func (s FavoriteSet) Toggled(id ItemID) FavoriteSet {
	out := s.Clone()
	out[id] = !s.IsFavorite(id)
	return out
}

// Favorites returns the ids currently flagged true, sorted.
func (s FavoriteSet) Favorites() []ItemID {
	out := make([]ItemID, 0, len(s))
	for id, fav := range s {
		if fav {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether s and other hold the same keys and flags.
func (s FavoriteSet) Equal(other FavoriteSet) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}
