package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/viant/xdisplay/internal/idgen"
	"github.com/viant/xdisplay/service/messaging"
)

var (
	// ErrProcessed is returned when a message is acknowledged twice.
	ErrProcessed = errors.New("message already processed")
	// ErrQueueFull is returned by TryPublish when the buffer has no room.
	ErrQueueFull = errors.New("queue full")
)

// Config for the in-memory queue.
type Config struct {
	MaxRetries  int
	RetryDelay  time.Duration
	QueueBuffer int
}

// DefaultConfig returns the standard in-memory queue configuration.
func DefaultConfig() Config {
	return Config{
		MaxRetries:  3,
		RetryDelay:  100 * time.Millisecond,
		QueueBuffer: 100,
	}
}

// Message is a delivery from an in-memory Queue.
type Message[T any] struct {
	id        string
	payload   T
	queue     *Queue[T]
	attempt   int
	mu        sync.Mutex
	processed bool
}

func (m *Message[T]) ID() string { return m.id }

func (m *Message[T]) T() *T { return &m.payload }

func (m *Message[T]) Ack() error {
	return m.settle()
}

// Nack redelivers the message after RetryDelay until MaxRetries is exceeded;
// after that, or when the buffer is full at redelivery time, the message is
// recorded as dropped.
func (m *Message[T]) Nack(_ error) error {
	if err := m.settle(); err != nil {
		return err
	}
	if m.attempt >= m.queue.config.MaxRetries {
		m.queue.drop()
		return nil
	}
	retry := &Message[T]{id: m.id, payload: m.payload, queue: m.queue, attempt: m.attempt + 1}
	time.AfterFunc(m.queue.config.RetryDelay, func() {
		select {
		case m.queue.messages <- retry:
		default:
			m.queue.drop()
		}
	})
	return nil
}

func (m *Message[T]) settle() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return ErrProcessed
	}
	m.processed = true
	return nil
}

// Queue is a buffered, in-process messaging.Queue.
type Queue[T any] struct {
	messages chan *Message[T]
	config   Config
	mu       sync.Mutex
	dropped  int
}

// NewQueue creates an in-memory queue.
func NewQueue[T any](config Config) *Queue[T] {
	if config.QueueBuffer <= 0 {
		config.QueueBuffer = DefaultConfig().QueueBuffer
	}
	return &Queue[T]{
		messages: make(chan *Message[T], config.QueueBuffer),
		config:   config,
	}
}

// Publish enqueues a copy of t, blocking while the buffer is full.
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := &Message[T]{id: idgen.New(), payload: *t, queue: q}
	select {
	case q.messages <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPublish enqueues a copy of t without waiting; it returns ErrQueueFull
// when the buffer has no room.
func (q *Queue[T]) TryPublish(t *T) error {
	msg := &Message[T]{id: idgen.New(), payload: *t, queue: q}
	select {
	case q.messages <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Consume takes the next message.
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	select {
	case msg := <-q.messages:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Size returns the number of buffered messages.
func (q *Queue[T]) Size() int {
	return len(q.messages)
}

func (q *Queue[T]) drop() {
	q.mu.Lock()
	q.dropped++
	q.mu.Unlock()
}

// Dropped returns the number of messages that ran out of retries.
func (q *Queue[T]) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

var _ messaging.Queue[any] = (*Queue[any])(nil)
