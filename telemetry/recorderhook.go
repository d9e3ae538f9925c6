package telemetry

import (
	"github.com/sarchlab/fuelsim/datarecording"
	"github.com/sarchlab/fuelsim/sim/hooking"
	"github.com/sarchlab/fuelsim/vessel"
)

// Table names used by RecorderHook.
const (
	StatusTable = "status"
	RateTable   = "rate"
	PoolTable   = "pool"
)

// StatusRow is a stored status report.
type StatusRow struct {
	Time   float64
	Part   string
	Status string
}

// RateRow is a stored rate report.
type RateRow struct {
	Time   float64
	Part   string
	Metric string
	Value  float64
}

// PoolRow is a stored sample of a pool.
type PoolRow struct {
	Time      float64
	Part      string
	Resource  string
	Amount    float64
	MaxAmount float64
}

// RecorderHook writes reports into a DataRecorder. When attached to a vessel
// with SamplePools, it also samples every pool every n ticks.
type RecorderHook struct {
	recorder    datarecording.DataRecorder
	vessel      *vessel.Vessel
	sampleEvery uint64
	lastStatus  map[string]string
}

// NewRecorderHook creates a RecorderHook and the tables it writes to.
func NewRecorderHook(recorder datarecording.DataRecorder) *RecorderHook {
	recorder.CreateTable(StatusTable, StatusRow{})
	recorder.CreateTable(RateTable, RateRow{})
	recorder.CreateTable(PoolTable, PoolRow{})

	return &RecorderHook{
		recorder:   recorder,
		lastStatus: make(map[string]string),
	}
}

// SamplePools makes the hook record the pools of v every n ticks.
func (h *RecorderHook) SamplePools(v *vessel.Vessel, n uint64) *RecorderHook {
	if n == 0 {
		panic("sample interval must be positive")
	}

	h.vessel = v
	h.sampleEvery = n

	return h
}

// Func records the report carried by the hook context.
func (h *RecorderHook) Func(ctx hooking.HookCtx) {
	switch item := ctx.Item.(type) {
	case vessel.StatusReport:
		part := string(item.Part)
		if last, ok := h.lastStatus[part]; ok && last == item.Status {
			return
		}

		h.lastStatus[part] = item.Status
		h.recorder.InsertData(StatusTable, StatusRow{
			Time:   item.Time,
			Part:   part,
			Status: item.Status,
		})
	case vessel.RateReport:
		h.recorder.InsertData(RateTable, RateRow{
			Time:   item.Time,
			Part:   string(item.Part),
			Metric: item.Metric,
			Value:  item.Value,
		})
	case vessel.TickReport:
		if h.vessel != nil && item.Count%h.sampleEvery == 0 {
			h.samplePools(item.Time)
		}
	}
}

// samplePools runs inside a vessel tick, so it reads parts directly instead
// of taking a snapshot.
func (h *RecorderHook) samplePools(now float64) {
	lib := h.vessel.Library()

	for _, p := range h.vessel.Parts() {
		for _, pool := range p.Pools() {
			name := ""
			if def, ok := lib.ByID(pool.Type); ok {
				name = def.Name
			}

			h.recorder.InsertData(PoolTable, PoolRow{
				Time:      now,
				Part:      string(p.ID()),
				Resource:  name,
				Amount:    pool.Amount,
				MaxAmount: pool.MaxAmount,
			})
		}
	}
}
