package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artpiece/internal/domain"
	"artpiece/internal/store"
)

func newRedisKV(t *testing.T) (*store.RedisKV, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return store.NewRedisKV(client, store.DefaultRedisPrefix), mr
}

func kvBackends(t *testing.T) map[string]domain.KeyValueStore {
	t.Helper()
	rkv, _ := newRedisKV(t)
	return map[string]domain.KeyValueStore{
		"file":  store.NewFileKV(t.TempDir()),
		"redis": rkv,
	}
}

func TestKV_GetMissing(t *testing.T) {
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			v, ok, err := kv.Get(context.Background(), "nothing")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, v)
		})
	}
}

func TestKV_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, kv.Set(ctx, "k", []byte(`{"a":true}`)))
			require.NoError(t, kv.Set(ctx, "k", []byte(`{"b":false}`)))

			v, ok, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.JSONEq(t, `{"b":false}`, string(v))

			require.NoError(t, kv.Delete(ctx, "k"))
			require.NoError(t, kv.Delete(ctx, "k"))
			_, ok, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFileKV_RejectsPathKeys(t *testing.T) {
	kv := store.NewFileKV(t.TempDir())
	for _, key := range []string{"", "../x", "a/b", `a\b`, ".."} {
		assert.Error(t, kv.Set(context.Background(), key, []byte("{}")), key)
	}
}

func TestFileKV_HonoursCancelledContext(t *testing.T) {
	kv := store.NewFileKV(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, kv.Set(ctx, "k", []byte("{}")), context.Canceled)
}

func TestRedisKV_UsesPrefix(t *testing.T) {
	kv, mr := newRedisKV(t)
	require.NoError(t, kv.Set(context.Background(), "favorites", []byte(`{}`)))

	got, err := mr.Get(store.DefaultRedisPrefix + "favorites")
	require.NoError(t, err)
	assert.Equal(t, `{}`, got)
}

func TestRedisKV_Unreachable(t *testing.T) {
	kv, mr := newRedisKV(t)
	mr.Close()

	err := kv.Set(context.Background(), "k", []byte("{}"))
	assert.Error(t, err)
}
