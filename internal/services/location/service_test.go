package location_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artpiece/internal/domain"
	loc "artpiece/internal/location"
	"artpiece/internal/logger"
	"artpiece/internal/services/location"
	"artpiece/internal/store"
)

type countingPrompter struct {
	answer bool
	asked  int
}

func (p *countingPrompter) Confirm(context.Context, string) (bool, error) {
	p.asked++
	return p.answer, nil
}

func newService(t *testing.T, answer bool) (*location.Service, *countingPrompter) {
	t.Helper()
	p := &countingPrompter{answer: answer}
	perms := store.NewPermissionStore(store.NewFileKV(t.TempDir()))
	svc := location.New(loc.StaticLocator{Latitude: 51.92, Longitude: 4.48}, perms, p, logger.Discard())
	return svc, p
}

func TestCurrent_GrantedOnceAskedOnce(t *testing.T) {
	ctx := context.Background()
	svc, p := newService(t, true)

	pos, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 51.92, pos.Latitude, 1e-9)

	_, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.asked)
}

func TestCurrent_Denied(t *testing.T) {
	ctx := context.Background()
	svc, p := newService(t, false)

	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Equal(t, "permission to access location was denied", err.Error())

	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Equal(t, 1, p.asked)
}

func TestResetPermission_AsksAgain(t *testing.T) {
	ctx := context.Background()
	svc, p := newService(t, false)

	_, _ = svc.Current(ctx)
	require.NoError(t, svc.ResetPermission(ctx))
	p.answer = true

	_, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, p.asked)
}
