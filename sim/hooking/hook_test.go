package hooking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type countingHook struct {
	positions []string
}

func (h *countingHook) Func(ctx HookCtx) {
	h.positions = append(h.positions, ctx.Pos.Name)
}

var _ = Describe("HookableBase", func() {
	var (
		base *HookableBase
		pos  *HookPos
	)

	BeforeEach(func() {
		base = &HookableBase{}
		pos = &HookPos{Name: "Status"}
	})

	It("should invoke hooks in registration order", func() {
		order := []string{}
		first := &countingHook{}
		base.AcceptHook(first)
		base.AcceptHook(HookFunc(func(ctx HookCtx) {
			order = append(order, ctx.Item.(string))
		}))

		base.InvokeHook(HookCtx{Pos: pos, Item: "a"})
		base.InvokeHook(HookCtx{Pos: pos, Item: "b"})

		Expect(first.positions).To(Equal([]string{"Status", "Status"}))
		Expect(order).To(Equal([]string{"a", "b"}))
		Expect(base.NumHooks()).To(Equal(2))
	})

	It("should panic when the same hook is registered twice", func() {
		h := &countingHook{}
		base.AcceptHook(h)

		Expect(func() { base.AcceptHook(h) }).To(Panic())
	})

	It("should accept the same function hook twice", func() {
		calls := 0
		f := HookFunc(func(HookCtx) { calls++ })
		base.AcceptHook(f)
		base.AcceptHook(f)

		base.InvokeHook(HookCtx{Pos: pos})

		Expect(calls).To(Equal(2))
	})

	It("should not expose the internal hook list", func() {
		base.AcceptHook(&countingHook{})

		hooks := base.Hooks()
		hooks[0] = nil

		Expect(base.Hooks()[0]).NotTo(BeNil())
	})
})
