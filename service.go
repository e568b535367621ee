package xdisplay

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/viant/afs"
	"github.com/viant/xdisplay/model/screen"
	"github.com/viant/xdisplay/service/dao"
	fsscreen "github.com/viant/xdisplay/service/dao/screen/fs"
	memscreen "github.com/viant/xdisplay/service/dao/screen/memory"
	"github.com/viant/xdisplay/service/event"
	"github.com/viant/xdisplay/service/messaging/memory"
	"github.com/viant/xdisplay/service/naming"
	"github.com/viant/xdisplay/tracing"
)

// Version is reported to the tracing backend.
const Version = "0.1.0"

// EventNameChanged is the event type published for every name transition.
const EventNameChanged = "nameChanged"

// Service is the xdisplay façade: a screen registry whose entries are named
// through the naming service.
type Service struct {
	config        *Config
	naming        *naming.Service
	namingOptions []naming.Option
	screens       dao.Service[int, screen.Screen]
	events        *event.Service
	ownsEvents    bool
	publisher     *event.Publisher[screen.NameChange]
	listening     atomic.Bool
	logger        log.Logger
	mux           sync.Mutex
}

// New creates a Service.
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if err := ret.init(context.Background()); err != nil {
		return nil, err
	}
	return ret, nil
}

// NewFromConfig creates a Service from cfg; options are applied afterwards.
func NewFromConfig(cfg *Config, options ...Option) (*Service, error) {
	return New(append([]Option{WithConfig(cfg)}, options...)...)
}

func (s *Service) init(ctx context.Context) error {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if s.logger == nil {
		s.logger = newLogger(s.config.Log)
	}
	namingOptions := []naming.Option{
		naming.WithDisplay(s.config.Display),
		naming.WithMarker(s.config.Marker),
		naming.WithTemplate(s.config.AutoNameTemplate),
		naming.WithBufferSize(s.config.NameBufferSize),
	}
	s.naming = naming.New(append(namingOptions, s.namingOptions...)...)

	if s.screens == nil {
		switch s.config.Store.Vendor {
		case StoreFS:
			screens, err := fsscreen.New(ctx, afs.New(), s.config.Store.BaseURL)
			if err != nil {
				return err
			}
			s.screens = screens
		default:
			s.screens = memscreen.New()
		}
	}
	if s.events == nil {
		queueConfig := memory.DefaultConfig()
		if s.config.Events.QueueBuffer > 0 {
			queueConfig.QueueBuffer = s.config.Events.QueueBuffer
		}
		s.events = event.New(event.WithNewQueueConfig(func(string) memory.Config { return queueConfig }))
		s.ownsEvents = true
	}
	s.publisher = event.PublisherOf[screen.NameChange](s.events)

	if s.config.Tracing.Enabled {
		if err := tracing.Init(s.config.Tracing.ServiceName, Version, s.config.Tracing.OutputFile); err != nil {
			return fmt.Errorf("failed to init tracing: %w", err)
		}
	}
	level.Debug(s.logger).Log("msg", "service initialised", "display", s.naming.Display(), "store", s.config.Store.Vendor)
	return nil
}

// Naming returns the accessor service shared by all screens.
func (s *Service) Naming() *naming.Service {
	return s.naming
}

// OnNameChange registers handler for name change events, replacing any
// previous handler. Events are only published once a handler is registered.
func (s *Service) OnNameChange(handler func(*event.Event[screen.NameChange])) {
	event.SetListenerOf[screen.NameChange](s.events, handler)
	s.listening.Store(true)
}

// Close stops publishing name changes and, when the event service is owned
// by s, stops its listeners.
func (s *Service) Close() {
	s.listening.Store(false)
	if s.ownsEvents {
		s.events.Close()
	}
}

// AddScreen registers a screen with the next free index. With Config.AutoName
// the screen is named from its index straight away.
func (s *Service) AddScreen(ctx context.Context) (aScreen *screen.Screen, err error) {
	ctx, span := tracing.StartSpan(ctx, "xdisplay.AddScreen", "")
	defer func() { tracing.EndSpan(span, err) }()

	var change *screen.NameChange
	s.mux.Lock()
	aScreen, change, err = s.addScreen(ctx)
	s.mux.Unlock()
	if err != nil {
		level.Error(s.logger).Log("msg", "failed to add screen", "err", err)
		return nil, err
	}
	span.WithAttributes(map[string]string{"screen": strconv.Itoa(aScreen.Num)})
	level.Info(s.logger).Log("msg", "screen added", "screen", aScreen.Num, "name", s.naming.Name(aScreen))
	if change != nil {
		s.notify(ctx, "AddScreen", change)
	}
	return aScreen, nil
}

func (s *Service) addScreen(ctx context.Context) (*screen.Screen, *screen.NameChange, error) {
	screens, err := s.screens.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list screens: %w", err)
	}
	num := 0
	for _, candidate := range screens {
		if candidate.Num >= num {
			num = candidate.Num + 1
		}
	}
	aScreen := screen.New(num)
	var change *screen.NameChange
	if s.config.AutoName {
		change = s.naming.SetAuto(aScreen)
	}
	if err = s.screens.Save(ctx, aScreen); err != nil {
		return nil, nil, fmt.Errorf("failed to save screen %d: %w", num, err)
	}
	return aScreen, change, nil
}

// Screen returns the screen with the given index.
func (s *Service) Screen(ctx context.Context, num int) (*screen.Screen, error) {
	return s.screens.Load(ctx, num)
}

// Screens returns registered screens ordered by index.
func (s *Service) Screens(ctx context.Context, parameters ...*dao.Parameter) ([]*screen.Screen, error) {
	return s.screens.List(ctx, parameters...)
}

// RemoveScreen unregisters a screen.
func (s *Service) RemoveScreen(ctx context.Context, num int) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if err := s.screens.Delete(ctx, num); err != nil {
		return err
	}
	level.Info(s.logger).Log("msg", "screen removed", "screen", num)
	return nil
}

// DisplayName resolves the name of screen num. Unknown screens resolve to the
// default display identifier.
func (s *Service) DisplayName(ctx context.Context, num int) (name string, err error) {
	ctx, span := tracing.StartSpan(ctx, "xdisplay.DisplayName", "")
	span.WithAttributes(map[string]string{"screen": strconv.Itoa(num)})
	defer func() { tracing.EndSpan(span, err) }()

	aScreen, err := s.screens.Load(ctx, num)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) || errors.Is(err, dao.ErrInvalidID) {
			return s.naming.Name(nil), nil
		}
		return "", err
	}
	return s.naming.Name(aScreen), nil
}

// SetDisplayName sets the name of screen num; an empty name stores the marker.
func (s *Service) SetDisplayName(ctx context.Context, num int, name string) error {
	return s.update(ctx, "SetDisplayName", num, func(aScreen *screen.Screen) *screen.NameChange {
		return s.naming.Set(aScreen, name)
	})
}

// SetDisplayNameAuto names screen num from its index.
func (s *Service) SetDisplayNameAuto(ctx context.Context, num int) error {
	return s.update(ctx, "SetDisplayNameAuto", num, s.naming.SetAuto)
}

func (s *Service) update(ctx context.Context, method string, num int, apply func(*screen.Screen) *screen.NameChange) (err error) {
	ctx, span := tracing.StartSpan(ctx, "xdisplay."+method, "")
	span.WithAttributes(map[string]string{"screen": strconv.Itoa(num)})
	defer func() { tracing.EndSpan(span, err) }()

	s.mux.Lock()
	change, err := s.apply(ctx, num, apply)
	s.mux.Unlock()
	if err != nil {
		level.Error(s.logger).Log("msg", "failed to update display name", "method", method, "screen", num, "err", err)
		return err
	}
	level.Debug(s.logger).Log("msg", "display name updated", "method", method, "screen", num, "name", change.Current, "source", change.Source)
	s.notify(ctx, method, change)
	return nil
}

func (s *Service) apply(ctx context.Context, num int, apply func(*screen.Screen) *screen.NameChange) (*screen.NameChange, error) {
	aScreen, err := s.screens.Load(ctx, num)
	if err != nil {
		return nil, fmt.Errorf("failed to load screen %d: %w", num, err)
	}
	change := apply(aScreen)
	if change == nil {
		return nil, fmt.Errorf("failed to load screen %d: %w", num, dao.ErrNotFound)
	}
	if err = s.screens.Save(ctx, aScreen); err != nil {
		return nil, fmt.Errorf("failed to save screen %d: %w", num, err)
	}
	return change, nil
}

func (s *Service) notify(ctx context.Context, method string, change *screen.NameChange) {
	if !s.listening.Load() {
		return
	}
	evt := event.NewEvent(&event.Context{
		ScreenNum: change.Num,
		EventType: EventNameChanged,
		Service:   "xdisplay",
		Method:    method,
	}, *change)
	if err := s.publisher.TryPublish(ctx, evt); err != nil {
		level.Warn(s.logger).Log("msg", "name change dropped", "screen", change.Num, "err", err)
	}
}
