package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Num  int
	Name string
}

func TestQueue(t *testing.T) {
	queue := NewQueue[testPayload](DefaultConfig())
	ctx := context.Background()

	payload := testPayload{Num: 1, Name: "Display-1"}
	require.NoError(t, queue.Publish(ctx, &payload))
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, message.ID())
	assert.Equal(t, payload, *message.T())
	assert.Equal(t, 0, queue.Size())

	assert.NoError(t, message.Ack())
	assert.ErrorIs(t, message.Ack(), ErrProcessed)
	assert.ErrorIs(t, message.Nack(errors.New("late")), ErrProcessed)
}

func TestQueue_Retries(t *testing.T) {
	config := DefaultConfig()
	config.MaxRetries = 2
	config.RetryDelay = 5 * time.Millisecond
	queue := NewQueue[testPayload](config)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, queue.Publish(ctx, &testPayload{Num: 2}))

	var ids []string
	for i := 0; i <= config.MaxRetries; i++ {
		message, err := queue.Consume(ctx)
		require.NoError(t, err)
		ids = append(ids, message.ID())
		require.NoError(t, message.Nack(errors.New("boom")))
	}
	assert.Equal(t, ids[0], ids[len(ids)-1], "redeliveries keep the message ID")
	assert.Equal(t, 1, queue.Dropped())
	assert.Equal(t, 0, queue.Size())
}

func TestQueue_ConsumeCancelled(t *testing.T) {
	queue := NewQueue[testPayload](DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := queue.Consume(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, queue.Publish(ctx, &testPayload{}), context.Canceled)
}

func TestQueue_TryPublish(t *testing.T) {
	config := DefaultConfig()
	config.QueueBuffer = 1
	queue := NewQueue[testPayload](config)

	require.NoError(t, queue.TryPublish(&testPayload{Num: 1}))
	assert.ErrorIs(t, queue.TryPublish(&testPayload{Num: 2}), ErrQueueFull)
	assert.Equal(t, 1, queue.Size())
}

func TestQueue_RetryDroppedWhenFull(t *testing.T) {
	config := DefaultConfig()
	config.QueueBuffer = 1
	config.RetryDelay = 5 * time.Millisecond
	queue := NewQueue[testPayload](config)
	ctx := context.Background()

	require.NoError(t, queue.Publish(ctx, &testPayload{Num: 1}))
	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	require.NoError(t, queue.Publish(ctx, &testPayload{Num: 2}))

	require.NoError(t, message.Nack(errors.New("boom")))
	assert.Eventually(t, func() bool { return queue.Dropped() == 1 }, time.Second, 5*time.Millisecond)

	next, err := queue.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, next.T().Num)
	assert.Equal(t, 0, queue.Size())
}
