package timing

import (
	"fmt"
	"sync"

	"github.com/sarchlab/fuelsim/sim/hooking"
)

// A SerialEngine handles events one at a time in time order. Among events due
// at the same time, primary events go before secondary ones.
type SerialEngine struct {
	hooking.HookableBase

	clockMu sync.RWMutex
	now     VTimeInSec

	primary   EventQueue
	secondary EventQueue

	// gate is held while an event is handled and for as long as the engine
	// is paused.
	gate    sync.Mutex
	pauseMu sync.Mutex
	paused  bool

	running sync.Mutex
}

// NewSerialEngine creates a SerialEngine at time zero.
func NewSerialEngine() *SerialEngine {
	return &SerialEngine{
		primary:   NewEventQueue(),
		secondary: NewEventQueue(),
	}
}

// Name returns the name of the engine.
func (e *SerialEngine) Name() string {
	return "SerialEngine"
}

// Now returns the time of the event being handled, or of the last one.
func (e *SerialEngine) Now() VTimeInSec {
	e.clockMu.RLock()
	defer e.clockMu.RUnlock()

	return e.now
}

func (e *SerialEngine) advanceTo(t VTimeInSec) {
	e.clockMu.Lock()
	e.now = t
	e.clockMu.Unlock()
}

// Schedule queues an event. Scheduling into the past panics.
func (e *SerialEngine) Schedule(evt Event) {
	if now := e.Now(); evt.Time() < now {
		panic(fmt.Sprintf(
			"event %T scheduled at %.10f, before now %.10f",
			evt, evt.Time(), now))
	}

	if evt.IsSecondary() {
		e.secondary.Push(evt)
		return
	}

	e.primary.Push(evt)
}

// Run handles events until none are left or a handler returns an error.
// Concurrent calls to Run wait for each other.
func (e *SerialEngine) Run() error {
	e.running.Lock()
	defer e.running.Unlock()

	for {
		evt := e.popDue()
		if evt == nil {
			return nil
		}

		if err := e.handle(evt); err != nil {
			return err
		}
	}
}

func (e *SerialEngine) handle(evt Event) error {
	e.gate.Lock()
	defer e.gate.Unlock()

	e.advanceTo(evt.Time())

	ctx := hooking.HookCtx{Domain: e, Pos: HookPosBeforeEvent, Item: evt}
	e.InvokeHook(ctx)

	err := evt.Handler().Handle(evt)

	ctx.Pos = HookPosAfterEvent
	ctx.Detail = err
	e.InvokeHook(ctx)

	return err
}

// popDue removes and returns the next event, or nil if both queues are empty.
func (e *SerialEngine) popDue() Event {
	switch {
	case e.primary.Len() == 0 && e.secondary.Len() == 0:
		return nil
	case e.primary.Len() == 0:
		return e.secondary.Pop()
	case e.secondary.Len() == 0:
		return e.primary.Pop()
	case e.primary.Peek().Time() <= e.secondary.Peek().Time():
		return e.primary.Pop()
	default:
		return e.secondary.Pop()
	}
}

// Pause stops the engine before its next event. It returns once the event
// being handled, if any, has finished.
func (e *SerialEngine) Pause() {
	e.pauseMu.Lock()
	defer e.pauseMu.Unlock()

	if e.paused {
		return
	}

	e.gate.Lock()
	e.paused = true
}

// Continue resumes a paused engine.
func (e *SerialEngine) Continue() {
	e.pauseMu.Lock()
	defer e.pauseMu.Unlock()

	if !e.paused {
		return
	}

	e.paused = false
	e.gate.Unlock()
}
