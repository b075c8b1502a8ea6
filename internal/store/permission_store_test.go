package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artpiece/internal/domain"
	"artpiece/internal/store"
)

func TestPermissionStore(t *testing.T) {
	ctx := context.Background()
	ps := store.NewPermissionStore(store.NewFileKV(t.TempDir()))

	got, err := ps.LoadPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionUndetermined, got)

	require.NoError(t, ps.SavePermission(ctx, domain.PermissionGranted))
	got, err = ps.LoadPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionGranted, got)

	require.NoError(t, ps.SavePermission(ctx, domain.PermissionUndetermined))
	got, err = ps.LoadPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionUndetermined, got)
}
