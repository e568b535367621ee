package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/xdisplay/model/screen"
	"github.com/viant/xdisplay/service/dao"
	"github.com/viant/xdisplay/service/dao/criteria"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	baseDir := filepath.Join(t.TempDir(), "screens")
	srv, err := New(ctx, afs.New(), baseDir)
	require.NoError(t, err)

	name := "Display-1"
	require.NoError(t, srv.Save(ctx, &screen.Screen{Num: 1, DisplayName: &name}))
	require.NoError(t, srv.Save(ctx, screen.New(0)))

	loaded, err := srv.Load(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, loaded.DisplayName)
	assert.Equal(t, "Display-1", *loaded.DisplayName)

	unnamed, err := srv.Load(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, unnamed.DisplayName)

	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "notes.txt"), []byte("x"), 0o644))

	all, err := srv.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 0, all[0].Num)
	assert.Equal(t, 1, all[1].Num)

	named, err := srv.List(ctx, dao.NewParameter(criteria.Named, true))
	require.NoError(t, err)
	require.Len(t, named, 1)

	require.NoError(t, srv.Delete(ctx, 1))
	_, err = srv.Load(ctx, 1)
	assert.ErrorIs(t, err, dao.ErrNotFound)
	assert.ErrorIs(t, srv.Delete(ctx, 1), dao.ErrNotFound)
}

func TestNew_EmptyBaseURL(t *testing.T) {
	_, err := New(context.Background(), nil, "")
	assert.Error(t, err)
}
