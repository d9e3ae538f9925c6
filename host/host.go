// Package host defines the contract between resource-moving modules and the
// simulation that owns parts, pools and time.
//
// Modules never hold state of the host. Every tick they query the host for
// pools and structure, mutate pool amounts in place, and report what happened
// through the telemetry sinks. The host must serialize module ticks; no two
// modules may run at the same time.
package host

import (
	"github.com/sarchlab/fuelsim/resource"
)

// PartID identifies a part of a vessel.
type PartID string

// Capability is a bit set of what a part can be used for. Capabilities are
// resolved once when a module is configured.
type Capability uint8

// Capabilities.
const (
	// CapFuelLine parts connect a parent part to a target part.
	CapFuelLine Capability = 1 << iota
	// CapSegment parts are stacked on top of each other and share propellant.
	CapSegment
)

// Has reports whether all bits of o are set.
func (c Capability) Has(o Capability) bool {
	return c&o == o
}

// PoolLookup finds the pools held by parts.
type PoolLookup interface {
	// Pool returns the pool of the given type on the part.
	Pool(part PartID, t resource.TypeID) (*resource.Pool, bool)

	// Pools lists all pools of a part in a stable order.
	Pools(part PartID) []*resource.Pool
}

// PoolCreator can attach a new, empty pool to a part.
type PoolCreator interface {
	// CreatePool adds a pool of the given type with zero amount and zero
	// capacity and returns it. If the part already has one, that one is
	// returned.
	CreatePool(part PartID, t resource.TypeID) *resource.Pool
}

// Granter hands out resources that are consumed to drive an operation.
type Granter interface {
	// RequestGrant asks for amount units of t on behalf of part. The returned
	// value is what was actually granted; it is never negative and never more
	// than requested.
	RequestGrant(part PartID, t resource.TypeID, amount float64) float64
}

// Clock tells the length of the current tick.
type Clock interface {
	// TickDuration returns the length of the current tick in seconds. It may
	// change between ticks under time warp.
	TickDuration() float64
}

// Activation controls whether a part's module is running.
type Activation interface {
	IsActive(part PartID) bool
	SetActive(part PartID, active bool)
}

// Structure answers questions about how parts are connected.
type Structure interface {
	// Capabilities returns what the part can be used for.
	Capabilities(part PartID) Capability

	// Parent returns the part a fuel line is attached to.
	Parent(part PartID) (PartID, bool)

	// Target returns the part a fuel line feeds.
	Target(part PartID) (PartID, bool)

	// PartAbove returns the part attached to the top of the part.
	PartAbove(part PartID) (PartID, bool)

	// HasCompetingConsumer reports whether the part runs its own propellant
	// consumer.
	HasCompetingConsumer(part PartID) bool

	// Consumer returns the propellant consumer running on the part.
	Consumer(part PartID) (Consumer, bool)
}

// Telemetry receives what modules want to display. Reports never feed back
// into module logic.
type Telemetry interface {
	ReportStatus(part PartID, status string)
	ReportRate(part PartID, metric string, value float64)
}

// Host is everything a module may ask of the simulation.
type Host interface {
	PoolLookup
	PoolCreator
	Granter
	Clock
	Activation
	Structure
	Telemetry

	// Library returns the resource types known to the host.
	Library() *resource.Library
}

// Propellant is one constituent of what a consumer burns.
type Propellant struct {
	Type  resource.TypeID
	Ratio float64 // share of the mixture by volume, summing to 1
}

// Consumer is a module that burns propellant, such as a rocket engine.
type Consumer interface {
	// RequestedThrust is the thrust the consumer wants this tick, in kN.
	RequestedThrust() float64

	// RealIsp is the effective specific impulse, in seconds.
	RealIsp() float64

	// MixtureDensity is the mass of one unit of the propellant mixture.
	MixtureDensity() float64

	// Propellants lists what the consumer burns.
	Propellants() []Propellant
}

// StandardGravity converts specific impulse into exhaust velocity.
const StandardGravity = 9.80665
