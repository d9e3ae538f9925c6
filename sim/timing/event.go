// Package timing provides virtual time and the event-driven engine that
// advances it.
package timing

import (
	"github.com/sarchlab/fuelsim/sim/hooking"
	"github.com/sarchlab/fuelsim/sim/id"
)

// VTimeInSec is a point or a span on the simulated clock, in seconds.
type VTimeInSec = float64

// An Event is a piece of work due at a given simulated time.
type Event interface {
	Time() VTimeInSec
	Handler() Handler

	// IsSecondary reports whether the event waits for all primary events of
	// the same time to be handled first.
	IsSecondary() bool
}

// A Handler is the only thing an event is allowed to change.
type Handler interface {
	Handle(e Event) error
}

// HookPosBeforeEvent fires right before an event is handled. The item is the
// event.
var HookPosBeforeEvent = &hooking.HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent fires right after an event is handled. The item is the
// event and the detail is the handler error, if any.
var HookPosAfterEvent = &hooking.HookPos{Name: "AfterEvent"}

// EventBase carries the time, handler and ordering class of an event.
type EventBase struct {
	ID        string
	time      VTimeInSec
	handler   Handler
	secondary bool
}

// NewEventBase creates a primary EventBase due at t.
func NewEventBase(t VTimeInSec, handler Handler) *EventBase {
	return &EventBase{
		ID:      id.Generate(),
		time:    t,
		handler: handler,
	}
}

// Time returns when the event is due.
func (e EventBase) Time() VTimeInSec {
	return e.time
}

// Handler returns the handler of the event.
func (e EventBase) Handler() Handler {
	return e.handler
}

// IsSecondary reports whether the event is secondary.
func (e EventBase) IsSecondary() bool {
	return e.secondary
}
