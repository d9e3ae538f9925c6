package timing

import (
	"log"
	"math"
	"sync"
)

// Warp scales the length of a tick. A factor of 1 means ticks are exactly one
// period long; a factor of 4 means each tick covers four periods of simulated
// time.
type Warp struct {
	lock   sync.RWMutex
	factor float64
}

// NewWarp creates a Warp with the given factor.
func NewWarp(factor float64) *Warp {
	w := &Warp{}
	w.Set(factor)

	return w
}

// Factor returns the current warp factor.
func (w *Warp) Factor() float64 {
	if w == nil {
		return 1
	}

	w.lock.RLock()
	defer w.lock.RUnlock()

	return w.factor
}

// Set changes the warp factor. The factor must be a positive finite number.
func (w *Warp) Set(factor float64) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		log.Panicf("invalid warp factor %f", factor)
	}

	w.lock.Lock()
	w.factor = factor
	w.lock.Unlock()
}

// TickDuration returns the simulated duration of one tick at frequency f.
func (w *Warp) TickDuration(f Freq) VTimeInSec {
	return f.Period() * w.Factor()
}
