package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artpiece/internal/domain"
	"artpiece/internal/store"
)

// brokenKV fails every write, standing in for a full disk.
type brokenKV struct{ domain.KeyValueStore }

func (brokenKV) Set(context.Context, string, []byte) error { return errors.New("disk full") }

func TestFavoritesStore_LoadEmpty(t *testing.T) {
	fs := store.NewFavoritesStore(store.NewFileKV(t.TempDir()))

	set, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, set)
	assert.Empty(t, set)
}

func TestFavoritesStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cases := map[string]domain.FavoriteSet{
		"empty":  {},
		"single": {"Mona Lisa": true},
		"mixed":  {"Mona Lisa": false, "Starry Night": true, "Nachtwacht": true},
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			fs := store.NewFavoritesStore(store.NewFileKV(t.TempDir()))
			require.NoError(t, fs.Save(ctx, want))

			got, err := fs.Load(ctx)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %v want %v", got, want)
		})
	}
}

func TestFavoritesStore_WireFormat(t *testing.T) {
	ctx := context.Background()
	kv := store.NewFileKV(t.TempDir())
	fs := store.NewFavoritesStore(kv)

	require.NoError(t, fs.Save(ctx, domain.FavoriteSet{"Mona Lisa": true}))

	raw, ok, err := kv.Get(ctx, store.FavoritesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"Mona Lisa":true}`, string(raw))
}

func TestFavoritesStore_SaveNilWritesEmptyObject(t *testing.T) {
	ctx := context.Background()
	kv := store.NewFileKV(t.TempDir())
	require.NoError(t, store.NewFavoritesStore(kv).Save(ctx, nil))

	raw, _, err := kv.Get(ctx, store.FavoritesKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestFavoritesStore_CorruptState(t *testing.T) {
	ctx := context.Background()
	for name, raw := range map[string]string{
		"not json":     `{oops`,
		"array":        `["Mona Lisa"]`,
		"string value": `{"Mona Lisa":"yes"}`,
	} {
		t.Run(name, func(t *testing.T) {
			kv := store.NewFileKV(t.TempDir())
			require.NoError(t, kv.Set(ctx, store.FavoritesKey, []byte(raw)))

			_, err := store.NewFavoritesStore(kv).Load(ctx)
			assert.ErrorIs(t, err, domain.ErrCorruptState)
		})
	}
}

func TestFavoritesStore_NullIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := store.NewFileKV(t.TempDir())
	require.NoError(t, kv.Set(ctx, store.FavoritesKey, []byte(`null`)))

	set, err := store.NewFavoritesStore(kv).Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, set)
	assert.Empty(t, set)
}

func TestFavoritesStore_SaveFailureIsPersistenceError(t *testing.T) {
	fs := store.NewFavoritesStore(brokenKV{store.NewFileKV(t.TempDir())})

	err := fs.Save(context.Background(), domain.FavoriteSet{"Mona Lisa": true})
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestFavoritesStore_Redis(t *testing.T) {
	ctx := context.Background()
	kv, _ := newRedisKV(t)
	fs := store.NewFavoritesStore(kv)

	want := domain.FavoriteSet{"Starry Night": true}
	require.NoError(t, fs.Save(ctx, want))
	got, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}
