package event

import (
	"context"

	"github.com/viant/xdisplay/service/messaging"
)

type Publisher[T any] struct {
	queue messaging.Queue[Event[T]]
}

// tryPublisher is implemented by queues that can refuse a message instead of waiting.
type tryPublisher[T any] interface {
	TryPublish(t *T) error
}

func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	return &Publisher[T]{queue: queue}
}

func (p *Publisher[T]) Publish(ctx context.Context, event *Event[T]) error {
	return p.queue.Publish(ctx, event)
}

// TryPublish publishes without waiting for buffer space when the queue
// supports it, otherwise it behaves like Publish.
func (p *Publisher[T]) TryPublish(ctx context.Context, event *Event[T]) error {
	if queue, ok := p.queue.(tryPublisher[Event[T]]); ok {
		return queue.TryPublish(event)
	}
	return p.queue.Publish(ctx, event)
}

// Receive takes the next message without settling it.
func (p *Publisher[T]) Receive(ctx context.Context) (messaging.Message[Event[T]], error) {
	return p.queue.Consume(ctx)
}

// Consume takes the next event and acknowledges it.
func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}
