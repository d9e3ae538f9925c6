// Package modeling provides the building blocks of simulated components.
package modeling

import (
	"sync"

	"github.com/sarchlab/fuelsim/sim/hooking"
	"github.com/sarchlab/fuelsim/sim/naming"
	"github.com/sarchlab/fuelsim/sim/timing"
)

// A Component is a element that is being simulated.
type Component interface {
	naming.Named
	timing.Handler
	hooking.Hookable
}

// ComponentBase provides some functions that other component can use.
type ComponentBase struct {
	naming.NamedBase
	sync.Mutex
	hooking.HookableBase
}

// NewComponentBase creates a new ComponentBase
func NewComponentBase(name string) *ComponentBase {
	c := new(ComponentBase)
	c.NamedBase = naming.MakeNamedBase(name)

	return c
}
