package event

import (
	"context"
	"fmt"
	"sync"
)

// Listener hands every consumed event to handler on its own goroutine.
// A message is acked once handler returns; a panicking handler nacks it so
// the queue can redeliver.
type Listener[T any] struct {
	publisher *Publisher[T]
	handler   func(*Event[T])
	ctx       context.Context
	cancel    context.CancelFunc
	done      sync.WaitGroup
}

func NewListener[T any](publisher *Publisher[T], handler func(*Event[T])) *Listener[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Listener[T]{
		publisher: publisher,
		handler:   handler,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Stop ends consumption and waits for the in-flight handler to return.
func (l *Listener[T]) Stop() {
	l.cancel()
	l.done.Wait()
}

func (l *Listener[T]) Start() {
	l.done.Add(1)
	go func() {
		defer l.done.Done()
		for {
			msg, err := l.publisher.Receive(l.ctx)
			if err != nil {
				if l.ctx.Err() != nil {
					return
				}
				continue
			}
			if msg == nil {
				continue
			}
			if err = l.handle(msg.T()); err != nil {
				_ = msg.Nack(err)
				continue
			}
			_ = msg.Ack()
		}
	}()
}

func (l *Listener[T]) handle(event *Event[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event handler panic: %v", r)
		}
	}()
	l.handler(event)
	return nil
}
