package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/xdisplay/service/dao"
)

type record struct {
	ID    string
	Value int
}

func newRecordStore() *MemoryStore[string, record] {
	return NewMemoryStore[string, record](
		func(r *record) string { return r.ID },
		func(r *record) *record { c := *r; return &c },
	)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := newRecordStore()

	require.NoError(t, s.Save(ctx, &record{ID: "a", Value: 1}))
	require.NoError(t, s.Save(ctx, &record{ID: "b", Value: 2}))

	loaded, err := s.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Value)

	loaded.Value = 10
	again, _ := s.Load(ctx, "a")
	assert.Equal(t, 1, again.Value, "loaded values are copies")

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Load(ctx, "a")
	assert.ErrorIs(t, err, dao.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "a"), dao.ErrNotFound)
	assert.ErrorIs(t, s.Save(ctx, nil), dao.ErrNilEntity)
}
