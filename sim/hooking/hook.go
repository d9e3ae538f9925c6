// Package hooking lets components expose what happens inside them to
// observers without depending on the observers.
package hooking

// A Hook observes a Hookable.
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc turns a plain function into a Hook. HookFuncs are not checked for
// duplicates since functions are not comparable.
type HookFunc func(ctx HookCtx)

// Func calls f.
func (f HookFunc) Func(ctx HookCtx) {
	f(ctx)
}

// HookPos names the place inside a component where hooks fire. Positions are
// compared by pointer.
type HookPos struct {
	Name string
}

// HookCtx describes one firing. Item is what the position is about. Detail
// carries anything extra, like an error.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable is anything hooks can be attached to.
type Hookable interface {
	AcceptHook(hook Hook)
	NumHooks() int
	Hooks() []Hook
}

// HookableBase keeps the hook list of a Hookable. Embed it and call
// InvokeHook at each position.
type HookableBase struct {
	hooks []Hook
}

// AcceptHook attaches a hook. Attaching the same hook value twice panics.
func (h *HookableBase) AcceptHook(hook Hook) {
	if _, ok := hook.(HookFunc); !ok {
		for _, existing := range h.hooks {
			if existing == hook {
				panic("hook already attached")
			}
		}
	}

	h.hooks = append(h.hooks, hook)
}

// NumHooks returns how many hooks are attached.
func (h *HookableBase) NumHooks() int {
	return len(h.hooks)
}

// Hooks returns a copy of the attached hooks in attach order.
func (h *HookableBase) Hooks() []Hook {
	return append([]Hook(nil), h.hooks...)
}

// InvokeHook calls every attached hook in attach order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}
