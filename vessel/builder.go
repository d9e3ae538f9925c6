package vessel

import (
	"github.com/go-logr/logr"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/resource"
	"github.com/sarchlab/fuelsim/sim/modeling"
	"github.com/sarchlab/fuelsim/sim/timing"
)

// Builder can build vessels.
type Builder struct {
	engine   timing.Engine
	freq     timing.Freq
	warp     *timing.Warp
	lib      *resource.Library
	duration timing.VTimeInSec
	logger   logr.Logger
}

// MakeBuilder creates a builder with a 50 Hz physics rate running for ten
// seconds.
func MakeBuilder() Builder {
	return Builder{
		freq:     50 * timing.Hz,
		duration: 10,
		logger:   logr.Discard(),
	}
}

// WithEngine sets the event engine that drives the vessel.
func (b Builder) WithEngine(engine timing.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the physics tick rate.
func (b Builder) WithFreq(freq timing.Freq) Builder {
	b.freq = freq
	return b
}

// WithWarp sets the time warp shared with whoever controls it.
func (b Builder) WithWarp(warp *timing.Warp) Builder {
	b.warp = warp
	return b
}

// WithLibrary sets the resource library.
func (b Builder) WithLibrary(lib *resource.Library) Builder {
	b.lib = lib
	return b
}

// WithDuration sets how long, in simulated seconds, the vessel ticks.
func (b Builder) WithDuration(d timing.VTimeInSec) Builder {
	b.duration = d
	return b
}

// WithLogger sets the logger.
func (b Builder) WithLogger(logger logr.Logger) Builder {
	b.logger = logger
	return b
}

// Build creates a vessel.
func (b Builder) Build(name string) *Vessel {
	if b.engine == nil {
		b.engine = timing.NewSerialEngine()
	}

	if b.lib == nil {
		b.lib = resource.NewLibrary()
	}

	if b.warp == nil {
		b.warp = timing.NewWarp(1)
	}

	if !(b.duration > 0) {
		panic("vessel duration must be positive")
	}

	v := &Vessel{
		lib:       b.lib,
		logger:    b.logger.WithName(name),
		partIndex: make(map[host.PartID]*Part),
		endTime:   b.duration,
	}
	v.TickingComponent = modeling.NewTickingComponent(name, b.engine, b.freq, v)
	v.TickScheduler.Warp = b.warp

	return v
}
