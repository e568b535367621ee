package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/xdisplay/model/screen"
	"github.com/viant/xdisplay/service/dao"
	"github.com/viant/xdisplay/service/dao/criteria"
)

const (
	filePrefix = "screen-"
	fileSuffix = ".json"
)

// Service stores each screen as a JSON document under baseURL. Any afs
// supported location can be used (file://, mem://, cloud storage).
type Service struct {
	baseURL string
	fs      afs.Service
	mu      sync.RWMutex
}

var _ dao.Service[int, screen.Screen] = (*Service)(nil)

// Save persists a screen.
func (s *Service) Save(ctx context.Context, aScreen *screen.Screen) error {
	if aScreen == nil {
		return dao.ErrNilEntity
	}
	if aScreen.Num < 0 {
		return dao.ErrInvalidID
	}
	data, err := json.Marshal(aScreen)
	if err != nil {
		return fmt.Errorf("failed to marshal screen %d: %w", aScreen.Num, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	URL := s.screenURL(aScreen.Num)
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save screen to %s: %w", URL, err)
	}
	return nil
}

// Load reads a screen or returns dao.ErrNotFound.
func (s *Service) Load(ctx context.Context, num int) (*screen.Screen, error) {
	if num < 0 {
		return nil, dao.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	URL := s.screenURL(num)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check screen %s: %w", URL, err)
	}
	if !exists {
		return nil, fmt.Errorf("screen %d: %w", num, dao.ErrNotFound)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read screen %s: %w", URL, err)
	}
	return decode(URL, data)
}

// Delete removes a screen or returns dao.ErrNotFound.
func (s *Service) Delete(ctx context.Context, num int) error {
	if num < 0 {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	URL := s.screenURL(num)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to check screen %s: %w", URL, err)
	}
	if !exists {
		return fmt.Errorf("screen %d: %w", num, dao.ErrNotFound)
	}
	if err = s.fs.Delete(ctx, URL); err != nil {
		return fmt.Errorf("failed to delete screen %s: %w", URL, err)
	}
	return nil
}

// List returns matching screens ordered by index. Files that do not follow
// the screen naming scheme are skipped.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*screen.Screen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list screens in %s: %w", s.baseURL, err)
	}
	var result []*screen.Screen
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		name := object.Name()
		if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			return nil, fmt.Errorf("failed to read screen %s: %w", object.URL(), err)
		}
		aScreen, err := decode(object.URL(), data)
		if err != nil {
			return nil, err
		}
		if criteria.MatchScreen(aScreen, parameters) {
			result = append(result, aScreen)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Num < result[j].Num })
	return result, nil
}

func (s *Service) screenURL(num int) string {
	return url.Join(s.baseURL, fmt.Sprintf("%s%d%s", filePrefix, num, fileSuffix))
}

func decode(URL string, data []byte) (*screen.Screen, error) {
	aScreen := &screen.Screen{}
	if err := json.Unmarshal(data, aScreen); err != nil {
		return nil, fmt.Errorf("failed to decode screen %s: %w", path.Base(URL), err)
	}
	return aScreen, nil
}

// New creates a storage-backed screen DAO rooted at baseURL.
func New(ctx context.Context, fs afs.Service, baseURL string) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if fs == nil {
		fs = afs.New()
	}
	baseURL = url.Normalize(baseURL, file.Scheme)
	exists, _ := fs.Exists(ctx, baseURL)
	if !exists {
		if err := fs.Create(ctx, baseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", baseURL, err)
		}
	}
	return &Service{baseURL: baseURL, fs: fs}, nil
}
