package monitoring

import (
	"sync"
	"time"

	"github.com/sarchlab/fuelsim/sim/hooking"
	"github.com/sarchlab/fuelsim/vessel"
)

// A ProgressBar tracks how far a simulation has run, in simulated seconds.
type ProgressBar struct {
	sync.Mutex
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	Total     float64   `json:"total"`
	Finished  float64   `json:"finished"`
}

// SetFinished records how much simulated time has passed.
func (b *ProgressBar) SetFinished(t float64) {
	b.Lock()
	defer b.Unlock()

	b.Finished = t
}

// Fraction returns the share of the total that is done.
func (b *ProgressBar) Fraction() float64 {
	b.Lock()
	defer b.Unlock()

	if b.Total <= 0 {
		return 0
	}

	return b.Finished / b.Total
}

// ProgressHook moves a progress bar along with the ticks of a vessel.
type ProgressHook struct {
	bar *ProgressBar
}

// NewProgressHook creates a hook that updates bar.
func NewProgressHook(bar *ProgressBar) *ProgressHook {
	return &ProgressHook{bar: bar}
}

// Func updates the bar on every tick report.
func (h *ProgressHook) Func(ctx hooking.HookCtx) {
	tick, ok := ctx.Item.(vessel.TickReport)
	if !ok {
		return
	}

	h.bar.Lock()
	h.bar.Total = tick.EndTime
	h.bar.Finished = tick.Time + tick.Duration
	h.bar.Unlock()
}
