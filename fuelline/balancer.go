// Package fuelline balances resources between the two ends of a fuel line.
//
// A Balancer sits on a fuel line part. Every tick it looks at each resource
// held by both the line's parent and its target, works out how much should
// move to bring the two pools towards the configured balance, caps that by the
// line's flow rate, and pays for it with a driver resource such as electric
// charge. When the driver resource runs short, the transfer shrinks in
// proportion.
package fuelline

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/resource"
)

// minVisibleFlowPerTick is the smallest transfer, scaled by tick duration,
// that counts as real movement rather than rounding noise.
const minVisibleFlowPerTick = 0.000005

// TickResult describes the outcome of one tick.
type TickResult struct {
	Status string

	// Flow is the total resource moved, per second.
	Flow float64

	// Draw is the total driver resource consumed, per second.
	Draw float64

	// Transferred is true if any resource visibly moved.
	Transferred bool

	// Fault is set when the tick deactivated the balancer.
	Fault error
}

// A Balancer is the module of a balancing fuel line.
type Balancer struct {
	name   string
	host   host.Host
	part   host.PartID
	cfg    Config
	logger logr.Logger

	driver resource.Definition
	status string
	flow   float64
	draw   float64
}

// Name returns the name of the balancer.
func (b *Balancer) Name() string {
	return b.name
}

// Part returns the fuel line part the balancer sits on.
func (b *Balancer) Part() host.PartID {
	return b.part
}

// Config returns the configuration of the balancer.
func (b *Balancer) Config() Config {
	return b.cfg
}

// Status returns the last status shown.
func (b *Balancer) Status() string {
	return b.status
}

// Rates returns the flow and driver draw per second of the last tick.
func (b *Balancer) Rates() (flow, draw float64) {
	return b.flow, b.draw
}

// Start is called when the vessel is loaded. Balancers start active.
func (b *Balancer) Start() {
	_ = b.Activate()
}

// Activate validates the configuration and turns the balancer on. On a
// configuration fault the balancer stays inactive and the fault is returned.
func (b *Balancer) Activate() error {
	if fault := b.validate(); fault != nil {
		b.deactivate(fault.Status)
		return fault
	}

	b.host.SetActive(b.part, true)
	b.setStatus(StatusIdle)

	return nil
}

// Shutdown turns the balancer off.
func (b *Balancer) Shutdown() {
	b.deactivate(StatusInactive)
}

// Toggle turns an active balancer off and an inactive one on.
func (b *Balancer) Toggle() error {
	if b.host.IsActive(b.part) {
		b.Shutdown()
		return nil
	}

	return b.Activate()
}

// Info summarizes the configuration for display in a part catalog.
func (b *Balancer) Info() string {
	return fmt.Sprintf("Flow Rate: %g\nResource Usage: %g\nResource Used: %s",
		b.cfg.FlowRate,
		b.cfg.ResourceUsage*b.cfg.FlowRate,
		b.cfg.DriverResource)
}

func (b *Balancer) validate() *host.Fault {
	if !b.host.Capabilities(b.part).Has(host.CapFuelLine) {
		return host.NewFault(host.ConfigurationFault, StatusNotFuelLine)
	}

	if b.cfg.Mode < ModeEqualize || b.cfg.Mode > ModeDrain {
		return host.NewFault(host.ConfigurationFault, StatusUnknownMode)
	}

	if b.cfg.BalanceRatio > 1 || b.cfg.BalanceRatio < 0 ||
		math.IsNaN(b.cfg.BalanceRatio) {
		return host.NewFault(host.ConfigurationFault, StatusRatioOutOfRange)
	}

	if !(b.cfg.FlowRate >= 0) || !(b.cfg.ResourceUsage >= 0) {
		return host.NewFault(host.ConfigurationFault, StatusFlowOutOfRange)
	}

	driver, ok := b.host.Library().ByName(b.cfg.DriverResource)
	if !ok {
		return host.NewFault(host.ConfigurationFault,
			statusResourceNotFound(b.cfg.DriverResource))
	}

	b.driver = driver

	return nil
}

// Tick advances the balancer by the host's current tick duration. It reports
// whether any resource moved.
func (b *Balancer) Tick() bool {
	return b.Advance(b.host.TickDuration()).Transferred
}

// Advance runs one tick of length dt seconds.
func (b *Balancer) Advance(dt float64) TickResult {
	if !b.host.IsActive(b.part) {
		return TickResult{Status: b.status}
	}

	if !(dt > 0) || math.IsInf(dt, 0) {
		return TickResult{Status: b.status}
	}

	parent, ok := b.host.Parent(b.part)
	if !ok {
		return b.fault(host.StructuralFault, StatusNoParent)
	}

	target, ok := b.host.Target(b.part)
	if !ok {
		return b.fault(host.StructuralFault, StatusNoTarget)
	}

	t := tick{
		maxFlow:    b.cfg.FlowRate * dt,
		minVisible: minVisibleFlowPerTick / dt,
	}

	lib := b.host.Library()
	for _, a := range b.host.Pools(parent) {
		def, ok := lib.ByID(a.Type)
		if !ok || !b.canMove(def) {
			continue
		}

		other, ok := b.host.Pool(target, a.Type)
		if !ok {
			continue
		}

		t.foundResource = true
		b.transfer(&t, a, other)
	}

	if !t.foundResource {
		return b.fault(host.NoCompatibleResource, StatusNoResources)
	}

	b.flow = t.moved / dt
	b.draw = t.drawn / dt

	switch {
	case t.lowDriver:
		b.setStatus(statusLowDriver(b.driver.Name))
	case t.transferred:
		b.setStatus(StatusActive)
	default:
		b.setStatus(StatusIdle)
	}

	b.reportRates()

	return TickResult{
		Status:      b.status,
		Flow:        b.flow,
		Draw:        b.draw,
		Transferred: t.transferred,
	}
}

type tick struct {
	maxFlow    float64
	minVisible float64

	moved float64
	drawn float64

	foundResource bool
	lowDriver     bool
	transferred   bool
}

func (b *Balancer) canMove(def resource.Definition) bool {
	if def.Flow != resource.FlowStackPriority {
		return false
	}

	if b.cfg.Mode == ModeDrain && def.Massless() {
		return false
	}

	return true
}

func (b *Balancer) desiredFlow(a, other *resource.Pool) float64 {
	switch b.cfg.Mode {
	case ModeWeighted:
		return weightedFlow(a, other, b.cfg.BalanceRatio)
	case ModeDrain:
		return drainFlow(a, other, b.cfg.Direction)
	default:
		return equalizeFlow(a, other)
	}
}

func (b *Balancer) transfer(t *tick, a, other *resource.Pool) {
	request := capMagnitude(b.desiredFlow(a, other), t.maxFlow)

	driverRequested := math.Abs(request) * b.cfg.ResourceUsage
	driverGranted := driverRequested
	actual := request

	if driverRequested > 0 {
		driverGranted = b.host.RequestGrant(b.part, b.driver.ID, driverRequested)
		driverGranted = math.Max(0, math.Min(driverGranted, driverRequested))
		actual = request * driverGranted / driverRequested
	}

	a.Amount += actual
	other.Amount -= actual
	a.Clamp()
	other.Clamp()

	t.drawn += driverGranted
	t.moved += math.Abs(actual)

	if driverRequested-driverGranted > t.minVisible {
		t.lowDriver = true
	} else if math.Abs(request) >= t.minVisible {
		t.transferred = true
	}

	b.logger.V(2).Info("transfer",
		"part", b.part,
		"resource", a.Type,
		"requested", request,
		"moved", actual,
		"driver", driverGranted)
}

func (b *Balancer) fault(kind host.FaultKind, status string) TickResult {
	fault := host.NewFault(kind, status)
	b.deactivate(status)

	return TickResult{Status: status, Fault: fault}
}

func (b *Balancer) deactivate(status string) {
	b.flow = 0
	b.draw = 0
	b.host.SetActive(b.part, false)
	b.reportRates()
	b.setStatus(status)
}

func (b *Balancer) setStatus(status string) {
	if status != b.status {
		b.logger.Info("status changed", "part", b.part, "status", status)
	}

	b.status = status
	b.host.ReportStatus(b.part, status)
}

func (b *Balancer) reportRates() {
	b.host.ReportRate(b.part, MetricFlow, b.flow)
	b.host.ReportRate(b.part, MetricDraw, b.draw)
}
