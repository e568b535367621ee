package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/xdisplay/model/screen"
	"github.com/viant/xdisplay/service/dao"
	"github.com/viant/xdisplay/service/dao/criteria"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	srv := New()

	name := "Display-2"
	require.NoError(t, srv.Save(ctx, &screen.Screen{Num: 2, DisplayName: &name}))
	require.NoError(t, srv.Save(ctx, screen.New(0)))
	require.NoError(t, srv.Save(ctx, screen.New(1)))

	loaded, err := srv.Load(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Display-2", *loaded.DisplayName)

	*loaded.DisplayName = "mutated"
	again, err := srv.Load(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Display-2", *again.DisplayName)

	all, err := srv.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{all[0].Num, all[1].Num, all[2].Num})

	named, err := srv.List(ctx, dao.NewParameter(criteria.Named, true))
	require.NoError(t, err)
	require.Len(t, named, 1)
	assert.Equal(t, 2, named[0].Num)

	require.NoError(t, srv.Delete(ctx, 1))
	_, err = srv.Load(ctx, 1)
	assert.ErrorIs(t, err, dao.ErrNotFound)
}

func TestService_InvalidInput(t *testing.T) {
	ctx := context.Background()
	srv := New()

	assert.ErrorIs(t, srv.Save(ctx, nil), dao.ErrNilEntity)
	assert.ErrorIs(t, srv.Save(ctx, screen.New(-1)), dao.ErrInvalidID)
	_, err := srv.Load(ctx, -1)
	assert.ErrorIs(t, err, dao.ErrInvalidID)
	assert.ErrorIs(t, srv.Delete(ctx, 5), dao.ErrNotFound)
}
