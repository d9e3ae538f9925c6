package vessel

import (
	"fmt"
	"math"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/resource"
)

// PropellantSpec names one constituent of an engine's mixture.
type PropellantSpec struct {
	Resource string
	Ratio    float64
}

// An Engine burns propellant from the part it is mounted on. It is the
// reference implementation of host.Consumer.
//
// Like a real engine module, it is not initialized until it has run once.
// Until then it reports zero thrust and zero Isp, so any demand computed from
// it is NaN.
type Engine struct {
	MaxThrust float64 // kN
	Throttle  float64 // 0 to 1
	Isp       float64 // s
	// Gravity turns Isp into exhaust velocity. Modules that compute this
	// engine's demand must use the same value.
	Gravity float64

	propellants    []host.Propellant
	mixtureDensity float64
	initialized    bool
	thrust         float64
}

// NewEngine creates an engine burning the given propellants. Ratios are
// normalized to sum to 1.
func NewEngine(
	lib *resource.Library,
	maxThrust, isp float64,
	specs []PropellantSpec,
) (*Engine, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("engine needs at least one propellant")
	}

	if !(maxThrust >= 0) || !(isp > 0) {
		return nil, fmt.Errorf(
			"engine thrust %g and isp %g must be positive", maxThrust, isp)
	}

	sum := 0.0
	for _, s := range specs {
		if !(s.Ratio > 0) {
			return nil, fmt.Errorf(
				"propellant %s has non-positive ratio %g", s.Resource, s.Ratio)
		}

		sum += s.Ratio
	}

	e := &Engine{
		MaxThrust: maxThrust,
		Throttle:  1,
		Isp:       isp,
		Gravity:   host.StandardGravity,
	}

	for _, s := range specs {
		def, ok := lib.ByName(s.Resource)
		if !ok {
			return nil, fmt.Errorf("propellant %s is not defined", s.Resource)
		}

		ratio := s.Ratio / sum
		e.propellants = append(e.propellants,
			host.Propellant{Type: def.ID, Ratio: ratio})
		e.mixtureDensity += ratio * def.Density
	}

	if e.mixtureDensity <= 0 {
		return nil, fmt.Errorf("propellant mixture has no mass")
	}

	return e, nil
}

// RequestedThrust returns the thrust the engine wants this tick.
func (e *Engine) RequestedThrust() float64 {
	if !e.initialized {
		return 0
	}

	return e.MaxThrust * e.Throttle
}

// RealIsp returns the engine's specific impulse.
func (e *Engine) RealIsp() float64 {
	if !e.initialized {
		return 0
	}

	return e.Isp
}

// MixtureDensity returns the mass per unit of mixed propellant.
func (e *Engine) MixtureDensity() float64 {
	return e.mixtureDensity
}

// Propellants returns the normalized propellant list.
func (e *Engine) Propellants() []host.Propellant {
	return e.propellants
}

// Thrust returns the thrust actually produced in the last tick.
func (e *Engine) Thrust() float64 {
	return e.thrust
}

// burn consumes this tick's propellant from the pools of p. When a propellant
// runs short, the whole mixture is throttled down by the same fraction.
func (e *Engine) burn(p *Part, dt float64) {
	if !e.initialized {
		e.initialized = true
		return
	}

	massFlow := e.RequestedThrust() / (e.Isp * e.Gravity)
	volume := massFlow * dt / e.mixtureDensity

	if !(volume > 0) {
		e.thrust = 0
		return
	}

	fraction := 1.0
	for _, prop := range e.propellants {
		pool := p.pool(prop.Type)
		if pool == nil {
			fraction = 0
			break
		}

		fraction = math.Min(fraction, pool.Amount/(volume*prop.Ratio))
	}

	for _, prop := range e.propellants {
		if pool := p.pool(prop.Type); pool != nil {
			pool.Amount -= volume * prop.Ratio * fraction
			pool.Clamp()
		}
	}

	e.thrust = e.RequestedThrust() * fraction
}
