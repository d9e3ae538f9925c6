// Package telemetry turns what modules report to a vessel into logs and
// database records.
package telemetry

import (
	"github.com/go-logr/logr"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/sim/hooking"
	"github.com/sarchlab/fuelsim/vessel"
)

// LogHook logs status changes at V(0), rates at V(2) and ticks at V(4).
type LogHook struct {
	logger logr.Logger
	last   map[host.PartID]string
}

// NewLogHook creates a LogHook.
func NewLogHook(logger logr.Logger) *LogHook {
	return &LogHook{
		logger: logger,
		last:   make(map[host.PartID]string),
	}
}

// Func logs the report carried by the hook context.
func (h *LogHook) Func(ctx hooking.HookCtx) {
	switch item := ctx.Item.(type) {
	case vessel.StatusReport:
		if h.last[item.Part] == item.Status {
			return
		}

		h.last[item.Part] = item.Status
		h.logger.Info("status",
			"time", item.Time, "part", item.Part, "status", item.Status)
	case vessel.RateReport:
		h.logger.V(2).Info("rate",
			"time", item.Time,
			"part", item.Part,
			"metric", item.Metric,
			"value", item.Value)
	case vessel.TickReport:
		h.logger.V(4).Info("tick",
			"time", item.Time, "dt", item.Duration, "count", item.Count)
	}
}
