package telemetry

import (
	"sort"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/sim/hooking"
	"github.com/sarchlab/fuelsim/vessel"
)

type statusSpan struct {
	status string
	since  float64
}

// StatusTime is the simulated time a part spent showing one status.
type StatusTime struct {
	Part   host.PartID
	Status string
	Time   float64
}

// StatusTimeTracer accumulates how long every part spends in every status.
// A status lasts from its report until a different status is reported on the
// same part, or until the last tick ends.
type StatusTimeTracer struct {
	current map[host.PartID]statusSpan
	totals  map[host.PartID]map[string]float64
	end     float64
}

// NewStatusTimeTracer creates a StatusTimeTracer.
func NewStatusTimeTracer() *StatusTimeTracer {
	return &StatusTimeTracer{
		current: make(map[host.PartID]statusSpan),
		totals:  make(map[host.PartID]map[string]float64),
	}
}

// Func records status changes and the end of every tick.
func (t *StatusTimeTracer) Func(ctx hooking.HookCtx) {
	switch item := ctx.Item.(type) {
	case vessel.StatusReport:
		t.changeStatus(item.Part, item.Status, item.Time)
	case vessel.TickReport:
		t.end = item.Time + item.Duration
	}
}

func (t *StatusTimeTracer) changeStatus(
	part host.PartID,
	status string,
	now float64,
) {
	span, ok := t.current[part]
	if ok && span.status == status {
		return
	}

	if ok {
		t.add(part, span.status, now-span.since)
	}

	t.current[part] = statusSpan{status: status, since: now}
}

func (t *StatusTimeTracer) add(part host.PartID, status string, d float64) {
	if d <= 0 {
		return
	}

	if t.totals[part] == nil {
		t.totals[part] = make(map[string]float64)
	}

	t.totals[part][status] += d
}

// Times returns the time spent per part and status, counting open statuses
// up to the end of the last tick. The result is sorted by part and status.
func (t *StatusTimeTracer) Times() []StatusTime {
	merged := make(map[host.PartID]map[string]float64)

	for part, byStatus := range t.totals {
		merged[part] = make(map[string]float64)
		for s, d := range byStatus {
			merged[part][s] = d
		}
	}

	for part, span := range t.current {
		if d := t.end - span.since; d > 0 {
			if merged[part] == nil {
				merged[part] = make(map[string]float64)
			}

			merged[part][span.status] += d
		}
	}

	var times []StatusTime

	for part, byStatus := range merged {
		for s, d := range byStatus {
			times = append(times, StatusTime{Part: part, Status: s, Time: d})
		}
	}

	sort.Slice(times, func(i, j int) bool {
		if times[i].Part != times[j].Part {
			return times[i].Part < times[j].Part
		}

		return times[i].Status < times[j].Status
	})

	return times
}
