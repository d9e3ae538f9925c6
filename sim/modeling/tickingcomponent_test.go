package modeling

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fuelsim/sim/timing"
)

type countdownTicker struct {
	left  int
	ticks []timing.VTimeInSec
	tc    *TickingComponent
}

func (t *countdownTicker) Tick() bool {
	t.ticks = append(t.ticks, t.tc.Now())
	t.left--

	return t.left > 0
}

var _ = Describe("TickingComponent", func() {
	It("should keep ticking while progress is made", func() {
		engine := timing.NewSerialEngine()
		ticker := &countdownTicker{left: 3}
		tc := NewTickingComponent("Comp", engine, 10*timing.Hz, ticker)
		ticker.tc = tc

		tc.TickNow()
		Expect(engine.Run()).To(Succeed())

		Expect(ticker.ticks).To(HaveLen(3))
		Expect(ticker.ticks[2]).To(BeNumerically("~", 0.2, 1e-9))
	})

	It("should reject invalid names", func() {
		engine := timing.NewSerialEngine()
		Expect(func() {
			NewTickingComponent("comp", engine, timing.Hz, &countdownTicker{})
		}).To(Panic())
	})
})
