package memory

import (
	"context"
	"sort"

	"github.com/viant/xdisplay/model/screen"
	"github.com/viant/xdisplay/service/dao"
	"github.com/viant/xdisplay/service/dao/criteria"
	"github.com/viant/xdisplay/service/dao/store"
)

// Service implements an in-memory, thread-safe screen store. All API methods
// work with copies.
type Service struct {
	store *store.MemoryStore[int, screen.Screen]
}

var _ dao.Service[int, screen.Screen] = (*Service)(nil)

func (s *Service) Save(ctx context.Context, aScreen *screen.Screen) error {
	if aScreen == nil {
		return dao.ErrNilEntity
	}
	if aScreen.Num < 0 {
		return dao.ErrInvalidID
	}
	return s.store.Save(ctx, aScreen)
}

func (s *Service) Load(ctx context.Context, num int) (*screen.Screen, error) {
	if num < 0 {
		return nil, dao.ErrInvalidID
	}
	return s.store.Load(ctx, num)
}

func (s *Service) Delete(ctx context.Context, num int) error {
	if num < 0 {
		return dao.ErrInvalidID
	}
	return s.store.Delete(ctx, num)
}

// List returns matching screens ordered by index.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*screen.Screen, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, aScreen := range all {
		if criteria.MatchScreen(aScreen, parameters) {
			out = append(out, aScreen)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Num < out[j].Num })
	return out, nil
}

func New() *Service {
	return &Service{
		store: store.NewMemoryStore[int, screen.Screen](
			func(s *screen.Screen) int { return s.Num },
			(*screen.Screen).Clone,
		),
	}
}
