package vessel

import (
	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/resource"
)

// A Part is one piece of a vessel. It holds pools, may be connected to other
// parts, and may carry an engine.
type Part struct {
	id   host.PartID
	caps host.Capability

	pools []*resource.Pool

	parent host.PartID
	target host.PartID
	above  host.PartID

	engine *Engine

	active bool
	status string
	rates  map[string]float64
}

func newPart(id host.PartID, caps host.Capability) *Part {
	return &Part{
		id:    id,
		caps:  caps,
		rates: make(map[string]float64),
	}
}

// ID returns the identifier of the part.
func (p *Part) ID() host.PartID {
	return p.id
}

// AddPool attaches a pool to the part. Amounts are clamped into
// [0, maxAmount].
func (p *Part) AddPool(t resource.TypeID, amount, maxAmount float64) *resource.Pool {
	if existing := p.pool(t); existing != nil {
		panic("part " + string(p.id) + " already has a pool of this type")
	}

	pool := &resource.Pool{Type: t, Amount: amount, MaxAmount: maxAmount}
	pool.Clamp()
	p.pools = append(p.pools, pool)

	return pool
}

// Pools returns the pools of the part in the order they were added.
func (p *Part) Pools() []*resource.Pool {
	return p.pools
}

func (p *Part) pool(t resource.TypeID) *resource.Pool {
	for _, pool := range p.pools {
		if pool.Type == t {
			return pool
		}
	}

	return nil
}
