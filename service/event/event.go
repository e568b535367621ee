package event

import (
	"time"

	"github.com/viant/xdisplay/internal/clock"
	"github.com/viant/xdisplay/internal/idgen"
)

// Context describes where an event originated.
type Context struct {
	ScreenNum int    `json:"screenNum"`
	EventType string `json:"eventType"`
	Service   string `json:"service"`
	Method    string `json:"method"`
}

// Event wraps a payload with identity and origin.
type Event[T any] struct {
	ID        string                 `json:"id"`
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		ID:        idgen.New(),
		Context:   context,
		CreatedAt: clock.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}
