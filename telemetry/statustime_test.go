package telemetry

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/sim/hooking"
	"github.com/sarchlab/fuelsim/vessel"
)

var _ = Describe("StatusTimeTracer", func() {
	var t *StatusTimeTracer

	status := func(time float64, part, s string) hooking.HookCtx {
		return hooking.HookCtx{
			Pos: vessel.HookPosStatus,
			Item: vessel.StatusReport{
				Time: time, Part: host.PartID(part), Status: s,
			},
		}
	}

	tick := func(time float64) hooking.HookCtx {
		return hooking.HookCtx{
			Pos:  vessel.HookPosTick,
			Item: vessel.TickReport{Time: time, Duration: 1},
		}
	}

	BeforeEach(func() {
		t = NewStatusTimeTracer()
	})

	It("should accumulate time per status", func() {
		t.Func(status(0, "Line", "Idle"))
		t.Func(status(2, "Line", "Active"))
		t.Func(status(3, "Line", "Active"))
		t.Func(status(5, "Line", "Idle"))
		t.Func(tick(9))

		Expect(t.Times()).To(Equal([]StatusTime{
			{Part: "Line", Status: "Active", Time: 3},
			{Part: "Line", Status: "Idle", Time: 7},
		}))
	})

	It("should keep parts apart", func() {
		t.Func(status(0, "A", "Idle"))
		t.Func(status(1, "B", "Active"))
		t.Func(tick(1))

		Expect(t.Times()).To(Equal([]StatusTime{
			{Part: "A", Status: "Idle", Time: 2},
			{Part: "B", Status: "Active", Time: 1},
		}))
	})
})

