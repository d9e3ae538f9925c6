package timing

import (
	"reflect"

	"github.com/go-logr/logr"

	"github.com/sarchlab/fuelsim/sim/hooking"
)

// EventLogger is an hook that logs every event handled by an engine.
type EventLogger struct {
	logger logr.Logger
}

// NewEventLogger returns a new EventLogger which writes at verbosity 3.
func NewEventLogger(logger logr.Logger) *EventLogger {
	h := new(EventLogger)

	h.logger = logger.V(3)

	return h
}

type named interface {
	Name() string
}

// Func writes the event information into the logger
func (h *EventLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	handlerName := reflect.TypeOf(evt.Handler()).String()
	if n, ok := evt.Handler().(named); ok {
		handlerName = n.Name()
	}

	h.logger.Info("event",
		"time", evt.Time(),
		"type", reflect.TypeOf(evt).String(),
		"handler", handlerName)
}
