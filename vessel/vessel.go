// Package vessel is an in-memory simulation of a craft made of parts. It is
// the host that resource-moving modules run in.
//
// A Vessel owns every part and pool. It ticks at a fixed frequency; within a
// tick it runs every module in registration order and then lets every engine
// burn. Module callbacks happen while the vessel lock is held, so readers
// outside the simulation use Snapshot and Toggle, which take the same lock.
package vessel

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/resource"
	"github.com/sarchlab/fuelsim/sim/hooking"
	"github.com/sarchlab/fuelsim/sim/modeling"
	"github.com/sarchlab/fuelsim/sim/timing"
)

// A Module is something that runs on a part every tick.
type Module interface {
	Name() string
	Part() host.PartID

	// Start is called once, before the first tick.
	Start()

	// Tick runs the module for the vessel's current tick duration.
	Tick() bool
}

// Vessel is a simulated craft.
type Vessel struct {
	*modeling.TickingComponent

	lib    *resource.Library
	logger logr.Logger

	parts     []*Part
	partIndex map[host.PartID]*Part
	modules   []Module

	endTime timing.VTimeInSec
	ticks   uint64
	started bool
}

// AddPart creates a part with the given capabilities.
func (v *Vessel) AddPart(id host.PartID, caps host.Capability) (*Part, error) {
	if id == "" {
		return nil, fmt.Errorf("part id must not be empty")
	}

	if _, ok := v.partIndex[id]; ok {
		return nil, fmt.Errorf("part %s already exists", id)
	}

	p := newPart(id, caps)
	v.parts = append(v.parts, p)
	v.partIndex[id] = p

	return p, nil
}

// MustAddPart is AddPart that panics on error.
func (v *Vessel) MustAddPart(id host.PartID, caps host.Capability) *Part {
	p, err := v.AddPart(id, caps)
	if err != nil {
		panic(err)
	}

	return p
}

// GetPart returns the part with the given id.
func (v *Vessel) GetPart(id host.PartID) (*Part, bool) {
	p, ok := v.partIndex[id]
	return p, ok
}

// Parts lists all parts in the order they were added.
func (v *Vessel) Parts() []*Part {
	return v.parts
}

// Connect makes line a fuel line from parent to target.
func (v *Vessel) Connect(line, parent, target host.PartID) error {
	p, ok := v.partIndex[line]
	if !ok {
		return fmt.Errorf("part %s does not exist", line)
	}

	p.parent = parent
	p.target = target

	return nil
}

// Stack attaches upper on top of lower.
func (v *Vessel) Stack(lower, upper host.PartID) error {
	p, ok := v.partIndex[lower]
	if !ok {
		return fmt.Errorf("part %s does not exist", lower)
	}

	p.above = upper

	return nil
}

// MountEngine puts an engine on a part.
func (v *Vessel) MountEngine(part host.PartID, e *Engine) error {
	p, ok := v.partIndex[part]
	if !ok {
		return fmt.Errorf("part %s does not exist", part)
	}

	p.engine = e

	return nil
}

// Detach removes a part from the vessel, as when it breaks off. Links of
// other parts pointing at it are left dangling and are reported as missing.
func (v *Vessel) Detach(id host.PartID) {
	v.Lock()
	defer v.Unlock()

	if _, ok := v.partIndex[id]; !ok {
		return
	}

	delete(v.partIndex, id)

	parts := make([]*Part, 0, len(v.parts)-1)
	for _, p := range v.parts {
		if p.id != id {
			parts = append(parts, p)
		}
	}

	v.parts = parts
}

// AddModule registers a module. Modules tick in the order they are added.
func (v *Vessel) AddModule(m Module) {
	v.modules = append(v.modules, m)
}

// Modules lists the registered modules.
func (v *Vessel) Modules() []Module {
	return v.modules
}

// Start schedules the first tick.
func (v *Vessel) Start() {
	v.TickNow()
}

// Tick runs one tick of every module and engine.
func (v *Vessel) Tick() bool {
	v.Lock()
	defer v.Unlock()

	if !v.started {
		v.started = true
		v.logger.Info("vessel started",
			"parts", len(v.parts), "modules", len(v.modules))

		for _, m := range v.modules {
			m.Start()
		}
	}

	dt := v.TickDuration()

	for _, m := range v.modules {
		m.Tick()
	}

	for _, p := range v.parts {
		if p.engine != nil {
			p.engine.burn(p, dt)
		}
	}

	v.ticks++
	now := v.Now()

	v.InvokeHook(hooking.HookCtx{
		Domain: v,
		Pos:    HookPosTick,
		Item: TickReport{
			Time:     now,
			Duration: dt,
			Count:    v.ticks,
			EndTime:  v.endTime,
		},
	})

	return now+dt < v.endTime-1e-9*dt
}

// TickCount returns the number of ticks run so far.
func (v *Vessel) TickCount() uint64 {
	return v.ticks
}

// EndTime returns the simulated time at which the vessel stops ticking.
func (v *Vessel) EndTime() float64 {
	return v.endTime
}

// Library returns the resource library of the vessel.
func (v *Vessel) Library() *resource.Library {
	return v.lib
}

// Pool returns the pool of type t on the part.
func (v *Vessel) Pool(part host.PartID, t resource.TypeID) (*resource.Pool, bool) {
	p, ok := v.partIndex[part]
	if !ok {
		return nil, false
	}

	pool := p.pool(t)

	return pool, pool != nil
}

// Pools returns all pools of the part in the order they were added.
func (v *Vessel) Pools(part host.PartID) []*resource.Pool {
	p, ok := v.partIndex[part]
	if !ok {
		return nil
	}

	return p.pools
}

// CreatePool adds an empty pool of type t to the part.
func (v *Vessel) CreatePool(part host.PartID, t resource.TypeID) *resource.Pool {
	p, ok := v.partIndex[part]
	if !ok {
		panic("creating a pool on missing part " + string(part))
	}

	if pool := p.pool(t); pool != nil {
		return pool
	}

	return p.AddPool(t, 0, 0)
}

// RequestGrant draws up to amount units of t from every pool of that type on
// the vessel, in part order.
func (v *Vessel) RequestGrant(
	_ host.PartID,
	t resource.TypeID,
	amount float64,
) float64 {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return 0
	}

	remaining := amount
	for _, p := range v.parts {
		pool := p.pool(t)
		if pool == nil {
			continue
		}

		take := math.Min(pool.Amount, remaining)
		pool.Amount -= take
		pool.Clamp()
		remaining -= take

		if remaining <= 0 {
			break
		}
	}

	return math.Max(0, amount-math.Max(0, remaining))
}

// IsActive reports whether the module on the part is running.
func (v *Vessel) IsActive(part host.PartID) bool {
	p, ok := v.partIndex[part]
	return ok && p.active
}

// SetActive starts or stops the module on the part.
func (v *Vessel) SetActive(part host.PartID, active bool) {
	if p, ok := v.partIndex[part]; ok {
		p.active = active
	}
}

// Capabilities returns what the part can be used for.
func (v *Vessel) Capabilities(part host.PartID) host.Capability {
	if p, ok := v.partIndex[part]; ok {
		return p.caps
	}

	return 0
}

// Parent returns the part a fuel line is attached to, if it still exists.
func (v *Vessel) Parent(part host.PartID) (host.PartID, bool) {
	p, ok := v.partIndex[part]
	if !ok {
		return "", false
	}

	return v.existing(p.parent)
}

// Target returns the part a fuel line feeds, if it still exists.
func (v *Vessel) Target(part host.PartID) (host.PartID, bool) {
	p, ok := v.partIndex[part]
	if !ok {
		return "", false
	}

	return v.existing(p.target)
}

// PartAbove returns the part stacked on top of the part, if any.
func (v *Vessel) PartAbove(part host.PartID) (host.PartID, bool) {
	p, ok := v.partIndex[part]
	if !ok {
		return "", false
	}

	return v.existing(p.above)
}

func (v *Vessel) existing(id host.PartID) (host.PartID, bool) {
	if id == "" {
		return "", false
	}

	if _, ok := v.partIndex[id]; !ok {
		return "", false
	}

	return id, true
}

// HasCompetingConsumer reports whether the part carries an engine.
func (v *Vessel) HasCompetingConsumer(part host.PartID) bool {
	p, ok := v.partIndex[part]
	return ok && p.engine != nil
}

// Consumer returns the engine on the part.
func (v *Vessel) Consumer(part host.PartID) (host.Consumer, bool) {
	p, ok := v.partIndex[part]
	if !ok || p.engine == nil {
		return nil, false
	}

	return p.engine, true
}

// ReportStatus records the status of the module on the part.
func (v *Vessel) ReportStatus(part host.PartID, status string) {
	if p, ok := v.partIndex[part]; ok {
		p.status = status
	}

	v.InvokeHook(hooking.HookCtx{
		Domain: v,
		Pos:    HookPosStatus,
		Item:   StatusReport{Time: v.Now(), Part: part, Status: status},
	})
}

// ReportRate records a named reading of the module on the part.
func (v *Vessel) ReportRate(part host.PartID, metric string, value float64) {
	if p, ok := v.partIndex[part]; ok {
		p.rates[metric] = value
	}

	v.InvokeHook(hooking.HookCtx{
		Domain: v,
		Pos:    HookPosRate,
		Item: RateReport{
			Time:   v.Now(),
			Part:   part,
			Metric: metric,
			Value:  value,
		},
	})
}
