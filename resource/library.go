package resource

import (
	"fmt"
	"sync"
)

// A Library is the registry of resource types known to a simulation. Names are
// resolved to TypeIDs once, when modules are configured.
type Library struct {
	lock   sync.RWMutex
	defs   []Definition
	byName map[string]TypeID
}

// NewLibrary creates an empty Library.
func NewLibrary() *Library {
	return &Library{
		byName: make(map[string]TypeID),
	}
}

// Define registers a resource type and returns its definition. Defining the
// same name twice is an error.
func (l *Library) Define(
	name string,
	density float64,
	flow FlowMode,
) (Definition, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if name == "" {
		return Definition{}, fmt.Errorf("resource name must not be empty")
	}

	if _, ok := l.byName[name]; ok {
		return Definition{}, fmt.Errorf("resource %q already defined", name)
	}

	if density < 0 {
		return Definition{}, fmt.Errorf(
			"resource %q has negative density %g", name, density)
	}

	def := Definition{
		ID:      TypeID(len(l.defs) + 1),
		Name:    name,
		Density: density,
		Flow:    flow,
	}
	l.defs = append(l.defs, def)
	l.byName[name] = def.ID

	return def, nil
}

// MustDefine is Define that panics on error.
func (l *Library) MustDefine(
	name string,
	density float64,
	flow FlowMode,
) Definition {
	def, err := l.Define(name, density, flow)
	if err != nil {
		panic(err)
	}

	return def
}

// ByName looks up a definition by name.
func (l *Library) ByName(name string) (Definition, bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	id, ok := l.byName[name]
	if !ok {
		return Definition{}, false
	}

	return l.defs[id-1], true
}

// ByID looks up a definition by its token.
func (l *Library) ByID(id TypeID) (Definition, bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	if id <= 0 || int(id) > len(l.defs) {
		return Definition{}, false
	}

	return l.defs[id-1], true
}

// All returns every definition in definition order.
func (l *Library) All() []Definition {
	l.lock.RLock()
	defer l.lock.RUnlock()

	defs := make([]Definition, len(l.defs))
	copy(defs, l.defs)

	return defs
}
