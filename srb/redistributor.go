// Package srb feeds the engine of a segmented solid rocket booster.
//
// A booster is a stack of segments. Only the bottom segment carries the
// engine, but all segments hold propellant. Every tick the Redistributor
// works out how much propellant the engine is about to burn, moves that much
// into the engine's own pool, and leaves every segment of the stack at the
// same fill ratio, so the whole stack burns down evenly.
package srb

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/resource"
)

// TickResult describes the outcome of one tick.
type TickResult struct {
	Status string

	// Demand is the propellant mass per second the engine asked for.
	Demand float64

	// Withdrawn is the total propellant volume moved into the engine's pools.
	Withdrawn float64
}

// A Redistributor is the module of the engine segment of a booster.
type Redistributor struct {
	name   string
	host   host.Host
	part   host.PartID
	cfg    Config
	logger logr.Logger

	status string
	demand float64
}

// Name returns the name of the redistributor.
func (r *Redistributor) Name() string {
	return r.name
}

// Part returns the managing part.
func (r *Redistributor) Part() host.PartID {
	return r.part
}

// Status returns the last status shown.
func (r *Redistributor) Status() string {
	return r.status
}

// Demand returns the propellant mass per second asked for in the last tick.
func (r *Redistributor) Demand() float64 {
	return r.demand
}

// Start is called when the vessel is loaded. Redistributors start active.
func (r *Redistributor) Start() {
	_ = r.Activate()
}

// Activate validates the configuration and turns the redistributor on.
func (r *Redistributor) Activate() error {
	var fault *host.Fault

	switch {
	case !r.host.Capabilities(r.part).Has(host.CapSegment):
		fault = host.NewFault(host.ConfigurationFault, StatusNotSegment)
	case !(r.cfg.Gravity > 0) || math.IsInf(r.cfg.Gravity, 0) ||
		r.cfg.MaxSegments < 0:
		fault = host.NewFault(host.ConfigurationFault, StatusBadConfig)
	}

	if fault != nil {
		r.deactivate(fault.Status)
		return fault
	}

	r.host.SetActive(r.part, true)
	r.setStatus(StatusIdle)

	return nil
}

// Info summarizes the configuration for display in a part catalog.
func (r *Redistributor) Info() string {
	limit := "none"
	if r.cfg.MaxSegments > 0 {
		limit = fmt.Sprint(r.cfg.MaxSegments)
	}

	return fmt.Sprintf("Gravity: %g\nSegment Limit: %s", r.cfg.Gravity, limit)
}

// Shutdown turns the redistributor off.
func (r *Redistributor) Shutdown() {
	r.deactivate(StatusInactive)
}

// Toggle turns an active redistributor off and an inactive one on.
func (r *Redistributor) Toggle() error {
	if r.host.IsActive(r.part) {
		r.Shutdown()
		return nil
	}

	return r.Activate()
}

// Tick advances the redistributor by the host's current tick duration. It
// reports whether any propellant moved.
func (r *Redistributor) Tick() bool {
	return r.Advance(r.host.TickDuration()).Withdrawn > 0
}

// Advance runs one tick of length dt seconds.
func (r *Redistributor) Advance(dt float64) TickResult {
	if !r.host.IsActive(r.part) {
		return TickResult{Status: r.status}
	}

	if !(dt > 0) || math.IsInf(dt, 0) {
		return TickResult{Status: r.status}
	}

	consumer, ok := r.host.Consumer(r.part)
	if !ok {
		r.demand = 0
		r.setStatus(StatusNoEngine)
		r.host.ReportRate(r.part, MetricDemand, 0)

		return TickResult{Status: r.status}
	}

	velocity := consumer.RealIsp() * r.cfg.Gravity
	mass := consumer.RequestedThrust() / velocity * dt

	// NaN while the engine has not run yet, Inf for a zero Isp with thrust.
	if math.IsNaN(mass) || math.IsInf(mass, 0) {
		return TickResult{Status: r.status}
	}

	r.demand = mass / dt
	r.host.ReportRate(r.part, MetricDemand, r.demand)

	if !(mass > 0) {
		r.setStatus(StatusIdle)
		return TickResult{Status: r.status, Demand: r.demand}
	}

	withdrawn := r.movePropellant(mass, consumer)

	if withdrawn > 0 {
		r.setStatus(StatusActive)
	} else {
		r.setStatus(StatusNoPropellant)
	}

	return TickResult{Status: r.status, Demand: r.demand, Withdrawn: withdrawn}
}

func (r *Redistributor) movePropellant(mass float64, c host.Consumer) float64 {
	density := c.MixtureDensity()
	if !(density > 0) {
		return 0
	}

	volume := mass / density
	withdrawn := 0.0

	for _, p := range c.Propellants() {
		withdrawn += r.TransferResource(p.Type, volume*p.Ratio)
	}

	return withdrawn
}

// TransferResource pulls up to amount units of t from the segment chain into
// the managing part's pool and levels the fill ratio of every segment. It
// returns the amount withdrawn.
func (r *Redistributor) TransferResource(t resource.TypeID, amount float64) float64 {
	if !(amount > 0) {
		return 0
	}

	links := r.chain(t)

	available, total := 0.0, 0.0
	for _, l := range links {
		if l.pool == nil {
			continue
		}

		available += l.pool.Amount
		total += l.pool.MaxAmount
	}

	toWithdraw := math.Min(available, amount)

	ratio := 0.0
	if total > 0 {
		ratio = (available - toWithdraw) / total
	}

	own := links[0].pool
	if own == nil {
		own = r.host.CreatePool(r.part, t)
	}

	own.Amount = toWithdraw + ratio*own.MaxAmount
	own.MaxAmount = math.Max(own.MaxAmount, math.Max(toWithdraw, own.Amount))
	own.Clamp()

	for _, l := range links[1:] {
		l.pool.Amount = ratio * l.pool.MaxAmount
		l.pool.Clamp()
	}

	r.logger.V(2).Info("withdraw",
		"part", r.part,
		"resource", t,
		"requested", amount,
		"withdrawn", toWithdraw,
		"segments", len(links),
		"ratio", ratio)

	return toWithdraw
}

func (r *Redistributor) deactivate(status string) {
	r.demand = 0
	r.host.SetActive(r.part, false)
	r.host.ReportRate(r.part, MetricDemand, 0)
	r.setStatus(status)
}

func (r *Redistributor) setStatus(status string) {
	if status != r.status {
		r.logger.Info("status changed", "part", r.part, "status", status)
	}

	r.status = status
	r.host.ReportStatus(r.part, status)
}
