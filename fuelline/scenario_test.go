package fuelline

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/resource"
	"github.com/sarchlab/fuelsim/vessel"
)

type lineFixture struct {
	v      *vessel.Vessel
	fuel   resource.Definition
	charge resource.Definition
	a, b   *resource.Pool
	bat    *resource.Pool
}

func newLineFixture(
	aAmount, aMax, bAmount, bMax, battery float64,
) *lineFixture {
	f := &lineFixture{}

	lib := resource.NewLibrary()
	f.fuel = lib.MustDefine("LiquidFuel", 0.005, resource.FlowStackPriority)
	f.charge = lib.MustDefine("ElectricCharge", 0, resource.FlowAllVessel)

	f.v = vessel.MakeBuilder().WithLibrary(lib).Build("Vessel")
	f.a = f.v.MustAddPart("TankA", 0).AddPool(f.fuel.ID, aAmount, aMax)
	f.b = f.v.MustAddPart("TankB", 0).AddPool(f.fuel.ID, bAmount, bMax)
	f.bat = f.v.MustAddPart("Battery", 0).
		AddPool(f.charge.ID, battery, math.Max(battery, 1))
	f.v.MustAddPart("Line", host.CapFuelLine)
	Expect(f.v.Connect("Line", "TankA", "TankB")).To(Succeed())

	return f
}

func (f *lineFixture) balancer(cfg Config) *Balancer {
	b := MakeBuilder().WithHost(f.v).WithConfig(cfg).Build("Balancer", "Line")
	Expect(b.Activate()).To(Succeed())

	return b
}

var _ = Describe("Balancing two tanks", func() {
	It("should equalize in one tick when the rate allows", func() {
		f := newLineFixture(50, 100, 150, 200, 1000)
		cfg := DefaultConfig()
		cfg.FlowRate = 1000
		b := f.balancer(cfg)

		result := b.Advance(1)

		Expect(f.a.Amount).To(BeNumerically("~", 66.6667, 1e-4))
		Expect(f.b.Amount).To(BeNumerically("~", 133.3333, 1e-4))
		Expect(result.Status).To(Equal(StatusActive))
		Expect(f.bat.Amount).To(BeNumerically("~", 1000-50.0/3*0.1, 1e-9))
	})

	It("should be idle at equilibrium", func() {
		f := newLineFixture(50, 100, 100, 200, 1000)
		b := f.balancer(DefaultConfig())

		result := b.Advance(1)

		Expect(f.a.Amount).To(Equal(50.0))
		Expect(f.b.Amount).To(Equal(100.0))
		Expect(result.Transferred).To(BeFalse())
		Expect(result.Status).To(Equal(StatusIdle))
	})

	It("should cap the flow per tick", func() {
		f := newLineFixture(0, 100, 100, 100, 1000)
		cfg := DefaultConfig()
		cfg.FlowRate = 4
		b := f.balancer(cfg)

		b.Advance(0.5)

		Expect(f.a.Amount).To(BeNumerically("~", 2, 1e-12))
		Expect(f.b.Amount).To(BeNumerically("~", 98, 1e-12))
	})

	It("should converge monotonically and conserve the total", func() {
		f := newLineFixture(0, 100, 300, 300, 1e6)
		cfg := DefaultConfig()
		cfg.FlowRate = 7
		b := f.balancer(cfg)

		gap := math.Abs(f.a.FillRatio() - f.b.FillRatio())
		for i := 0; i < 150; i++ {
			b.Advance(0.1)

			newGap := math.Abs(f.a.FillRatio() - f.b.FillRatio())
			Expect(newGap).To(BeNumerically("<=", gap+1e-12))
			Expect(f.a.Amount + f.b.Amount).To(BeNumerically("~", 300, 1e-9))
			Expect(f.a.Amount).To(BeNumerically("<=", f.a.MaxAmount))
			Expect(f.b.Amount).To(BeNumerically(">=", 0))
			gap = newGap
		}

		Expect(gap).To(BeNumerically("~", 0, 1e-9))
	})

	It("should stall and warn without driver resource", func() {
		f := newLineFixture(0, 100, 100, 100, 0)
		b := f.balancer(DefaultConfig())

		result := b.Advance(1)

		Expect(f.a.Amount).To(Equal(0.0))
		Expect(result.Status).To(Equal("Low ElectricCharge!"))
	})

	It("should fault when the target breaks off", func() {
		f := newLineFixture(0, 100, 100, 100, 10)
		b := f.balancer(DefaultConfig())

		f.v.Detach("TankB")
		result := b.Advance(1)

		Expect(result.Fault).To(MatchError(StatusNoTarget))
		Expect(f.v.IsActive("Line")).To(BeFalse())
	})

	Context("in weighted mode", func() {
		It("should behave like equalize at 0.5", func() {
			f := newLineFixture(50, 100, 150, 200, 1000)
			cfg := DefaultConfig()
			cfg.Mode = ModeWeighted
			cfg.FlowRate = 1000
			b := f.balancer(cfg)

			b.Advance(1)

			Expect(f.a.FillRatio()).To(BeNumerically("~", f.b.FillRatio(), 1e-9))
			Expect(f.a.Amount).To(BeNumerically("~", 66.6667, 1e-4))
			Expect(f.a.Amount + f.b.Amount).To(BeNumerically("~", 200, 1e-9))
		})

		It("should settle on the weighted fill ratios", func() {
			f := newLineFixture(50, 100, 50, 100, 1000)
			cfg := DefaultConfig()
			cfg.Mode = ModeWeighted
			cfg.BalanceRatio = 0.75
			cfg.FlowRate = 1000
			b := f.balancer(cfg)

			b.Advance(1)

			Expect(f.a.Amount).To(BeNumerically("~", 75, 1e-9))
			Expect(f.b.Amount).To(BeNumerically("~", 25, 1e-9))

			result := b.Advance(1)
			Expect(result.Status).To(Equal(StatusIdle))
		})

		It("should spill into the other pool once one is full", func() {
			f := newLineFixture(80, 100, 80, 100, 1000)
			cfg := DefaultConfig()
			cfg.Mode = ModeWeighted
			cfg.BalanceRatio = 1
			cfg.FlowRate = 1000
			b := f.balancer(cfg)

			b.Advance(1)

			Expect(f.a.Amount).To(BeNumerically("~", 100, 1e-9))
			Expect(f.b.Amount).To(BeNumerically("~", 60, 1e-9))
		})
	})

	Context("in drain mode", func() {
		It("should empty the parent into the target", func() {
			f := newLineFixture(30, 100, 50, 100, 1000)
			cfg := DefaultConfig()
			cfg.Mode = ModeDrain
			cfg.FlowRate = 1000
			b := f.balancer(cfg)

			b.Advance(1)

			Expect(f.a.Amount).To(Equal(0.0))
			Expect(f.b.Amount).To(Equal(80.0))
		})

		It("should stop when the receiver is full", func() {
			f := newLineFixture(30, 100, 90, 100, 1000)
			cfg := DefaultConfig()
			cfg.Mode = ModeDrain
			cfg.Direction = TargetToParent
			cfg.FlowRate = 1000
			b := f.balancer(cfg)

			b.Advance(1)

			Expect(f.a.Amount).To(Equal(100.0))
			Expect(f.b.Amount).To(BeNumerically("~", 20, 1e-9))
		})
	})

	It("should run as a vessel module", func() {
		f := newLineFixture(0, 100, 100, 100, 1000)
		b := MakeBuilder().WithHost(f.v).Build("Balancer", "Line")
		f.v.AddModule(b)

		f.v.Start()
		Expect(f.v.Engine.Run()).To(Succeed())

		Expect(f.a.Amount).To(BeNumerically("~", 50, 1e-9))
		Expect(f.a.Amount + f.b.Amount).To(BeNumerically("~", 100, 1e-9))
		Expect(b.Status()).To(Equal(StatusIdle))
	})
})
