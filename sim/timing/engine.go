package timing

import (
	"github.com/sarchlab/fuelsim/sim/hooking"
)

// Clock reports the current simulated time.
type Clock interface {
	Now() VTimeInSec
}

// Scheduler queues events for later handling.
type Scheduler interface {
	Clock

	Schedule(e Event)
}

// An Engine owns the event queue of a flight and moves simulated time
// forward event by event.
type Engine interface {
	hooking.Hookable
	Scheduler

	// Run handles events until the queue is empty or a handler fails. The
	// first handler error stops the run and is returned.
	Run() error

	// Pause blocks the run loop before the next event.
	Pause()

	// Continue releases a paused run loop.
	Continue()
}
