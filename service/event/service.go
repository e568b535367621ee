package event

import (
	"reflect"
	"sync"

	"github.com/viant/xdisplay/service/messaging"
	"github.com/viant/xdisplay/service/messaging/memory"
)

// Service keeps one queue, publisher and listener per event payload type.
type Service struct {
	typedPublishers map[reflect.Type]any
	typedListeners  map[reflect.Type]stopper
	mux             sync.Mutex
	newQueueConfig  func(name string) memory.Config
}

type stopper interface{ Stop() }

func New(opts ...Option) *Service {
	ret := &Service{
		typedPublishers: make(map[reflect.Type]any),
		typedListeners:  make(map[reflect.Type]stopper),
		newQueueConfig:  func(string) memory.Config { return memory.DefaultConfig() },
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Close stops every registered listener.
func (s *Service) Close() {
	s.mux.Lock()
	listeners := s.typedListeners
	s.typedListeners = make(map[reflect.Type]stopper)
	s.mux.Unlock()
	for _, listener := range listeners {
		listener.Stop()
	}
}

func keyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// PublisherOf returns the publisher for events carrying T.
func PublisherOf[T any](s *Service) *Publisher[T] {
	key := keyOf[T]()
	s.mux.Lock()
	defer s.mux.Unlock()
	if ret, ok := s.typedPublishers[key]; ok {
		return ret.(*Publisher[T])
	}
	var queue messaging.Queue[Event[T]] = memory.NewQueue[Event[T]](s.newQueueConfig(key.String()))
	publisher := NewPublisher[T](queue)
	s.typedPublishers[key] = publisher
	return publisher
}

// SetListenerOf starts handler for events carrying T, replacing any previous
// listener for that type.
func SetListenerOf[T any](s *Service, handler func(*Event[T])) {
	key := keyOf[T]()
	publisher := PublisherOf[T](s)
	s.mux.Lock()
	previous, ok := s.typedListeners[key]
	listener := NewListener[T](publisher, handler)
	s.typedListeners[key] = listener
	s.mux.Unlock()
	if ok {
		previous.Stop()
	}
	listener.Start()
}
