package vessel

import (
	"fmt"
	"sort"

	"github.com/sarchlab/fuelsim/host"
)

// PoolSnapshot is a copy of a pool's state.
type PoolSnapshot struct {
	Resource  string  `json:"resource"`
	Amount    float64 `json:"amount"`
	MaxAmount float64 `json:"max_amount"`
}

// RateSnapshot is a copy of a named reading.
type RateSnapshot struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// PartSnapshot is a copy of a part's state.
type PartSnapshot struct {
	ID     host.PartID    `json:"id"`
	Module string         `json:"module,omitempty"`
	Active bool           `json:"active"`
	Status string         `json:"status,omitempty"`
	Pools  []PoolSnapshot `json:"pools"`
	Rates  []RateSnapshot `json:"rates,omitempty"`
	Thrust float64        `json:"thrust,omitempty"`
}

// Snapshot copies the state of every part. It is safe to call while the
// simulation runs.
func (v *Vessel) Snapshot() []PartSnapshot {
	v.Lock()
	defer v.Unlock()

	snapshots := make([]PartSnapshot, 0, len(v.parts))
	for _, p := range v.parts {
		snapshots = append(snapshots, v.snapshotPart(p))
	}

	return snapshots
}

func (v *Vessel) snapshotPart(p *Part) PartSnapshot {
	s := PartSnapshot{
		ID:     p.id,
		Active: p.active,
		Status: p.status,
		Pools:  make([]PoolSnapshot, 0, len(p.pools)),
	}

	for _, m := range v.modules {
		if m.Part() == p.id {
			s.Module = m.Name()
		}
	}

	for _, pool := range p.pools {
		name := fmt.Sprintf("#%d", pool.Type)
		if def, ok := v.lib.ByID(pool.Type); ok {
			name = def.Name
		}

		s.Pools = append(s.Pools, PoolSnapshot{
			Resource:  name,
			Amount:    pool.Amount,
			MaxAmount: pool.MaxAmount,
		})
	}

	metrics := make([]string, 0, len(p.rates))
	for m := range p.rates {
		metrics = append(metrics, m)
	}

	sort.Strings(metrics)

	for _, m := range metrics {
		s.Rates = append(s.Rates, RateSnapshot{Metric: m, Value: p.rates[m]})
	}

	if p.engine != nil {
		s.Thrust = p.engine.Thrust()
	}

	return s
}

type toggler interface {
	Toggle() error
}

// Toggle switches the named module on or off. It is safe to call while the
// simulation runs.
func (v *Vessel) Toggle(moduleName string) error {
	v.Lock()
	defer v.Unlock()

	for _, m := range v.modules {
		if m.Name() != moduleName {
			continue
		}

		t, ok := m.(toggler)
		if !ok {
			return fmt.Errorf("module %s cannot be toggled", moduleName)
		}

		return t.Toggle()
	}

	return fmt.Errorf("module %s not found", moduleName)
}

// TotalAmount sums a resource over every part of the vessel.
func (v *Vessel) TotalAmount(resourceName string) float64 {
	v.Lock()
	defer v.Unlock()

	def, ok := v.lib.ByName(resourceName)
	if !ok {
		return 0
	}

	total := 0.0
	for _, p := range v.parts {
		if pool := p.pool(def.ID); pool != nil {
			total += pool.Amount
		}
	}

	return total
}
