// Package resource defines resource types and the finite-capacity pools that
// hold them.
package resource

import (
	"fmt"
	"math"
)

// TypeID is an opaque token identifying a resource type. Tokens are issued by
// a Library and are only meaningful within that library.
type TypeID int

// NoType is the zero TypeID. No library ever issues it.
const NoType TypeID = 0

// FlowMode describes how a resource may move between parts.
type FlowMode int

// Flow modes.
const (
	// FlowNone resources never leave the part that holds them.
	FlowNone FlowMode = iota
	// FlowStackPriority resources move along lines and stacks. Only these can
	// be balanced between two pools.
	FlowStackPriority
	// FlowAllVessel resources are shared by every part of a vessel, like
	// electric charge.
	FlowAllVessel
)

func (m FlowMode) String() string {
	switch m {
	case FlowNone:
		return "none"
	case FlowStackPriority:
		return "stack"
	case FlowAllVessel:
		return "vessel"
	default:
		return fmt.Sprintf("FlowMode(%d)", int(m))
	}
}

// ParseFlowMode converts the textual flow mode used in configuration files.
func ParseFlowMode(s string) (FlowMode, error) {
	switch s {
	case "none", "":
		return FlowNone, nil
	case "stack":
		return FlowStackPriority, nil
	case "vessel":
		return FlowAllVessel, nil
	default:
		return FlowNone, fmt.Errorf("unknown flow mode %q", s)
	}
}

// Definition describes a resource type.
type Definition struct {
	ID      TypeID
	Name    string
	Density float64 // mass per unit
	Flow    FlowMode
}

// Massless reports whether a unit of the resource weighs nothing.
func (d Definition) Massless() bool {
	return d.Density == 0
}

// Pool is a finite-capacity container of one resource type. Hosts own pools;
// modules only change Amount, and MaxAmount when growing a buffer pool.
type Pool struct {
	Type      TypeID
	Amount    float64
	MaxAmount float64
}

// FillRatio returns Amount/MaxAmount. A pool without capacity is reported as
// empty.
func (p *Pool) FillRatio() float64 {
	if p.MaxAmount <= 0 {
		return 0
	}

	return p.Amount / p.MaxAmount
}

// Headroom returns how much more the pool can take.
func (p *Pool) Headroom() float64 {
	return math.Max(0, p.MaxAmount-p.Amount)
}

// Clamp forces Amount back into [0, MaxAmount]. It is used after arithmetic
// that is exact in theory but may land a few ulps outside the bounds.
func (p *Pool) Clamp() {
	if p.Amount < 0 {
		p.Amount = 0
	}

	if p.Amount > p.MaxAmount {
		p.Amount = p.MaxAmount
	}
}

// Validate checks the capacity invariant.
func (p *Pool) Validate() error {
	switch {
	case math.IsNaN(p.Amount) || math.IsNaN(p.MaxAmount):
		return fmt.Errorf("pool of type %d holds NaN", p.Type)
	case p.MaxAmount < 0:
		return fmt.Errorf("pool of type %d has negative capacity %g",
			p.Type, p.MaxAmount)
	case p.Amount < 0 || p.Amount > p.MaxAmount:
		return fmt.Errorf("pool of type %d holds %g, outside [0, %g]",
			p.Type, p.Amount, p.MaxAmount)
	}

	return nil
}
