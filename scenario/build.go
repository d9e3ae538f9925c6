package scenario

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/sarchlab/fuelsim/fuelline"
	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/resource"
	"github.com/sarchlab/fuelsim/sim/naming"
	"github.com/sarchlab/fuelsim/sim/timing"
	"github.com/sarchlab/fuelsim/srb"
	"github.com/sarchlab/fuelsim/vessel"
)

// Options override what a scenario file says. Zero values keep the file's
// setting.
type Options struct {
	Engine   timing.Engine
	Freq     float64
	Duration float64
	Warp     float64
	Logger   logr.Logger
}

// A Flight is a built scenario, ready to run.
type Flight struct {
	Engine  timing.Engine
	Vessel  *vessel.Vessel
	Warp    *timing.Warp
	Library *resource.Library

	Balancers      []*fuelline.Balancer
	Redistributors []*srb.Redistributor
}

// Run starts the vessel and runs the engine until the flight ends.
func (f *Flight) Run() error {
	f.Vessel.Start()
	return f.Engine.Run()
}

// Modules lists all modules in registration order.
func (f *Flight) Modules() []vessel.Module {
	return f.Vessel.Modules()
}

func orDefault(v, fileValue, def float64) float64 {
	switch {
	case v > 0:
		return v
	case fileValue > 0:
		return fileValue
	default:
		return def
	}
}

// Build creates the vessel and modules a scenario describes.
func (s *Scenario) Build(opts Options) (*Flight, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	lib, err := s.buildLibrary()
	if err != nil {
		return nil, err
	}

	engine := opts.Engine
	if engine == nil {
		engine = timing.NewSerialEngine()
	}

	name := s.Name
	if name == "" {
		name = "Vessel"
	}

	if err := naming.ValidateName(name); err != nil {
		return nil, fmt.Errorf("scenario name: %w", err)
	}

	warp := timing.NewWarp(orDefault(opts.Warp, s.Warp, 1))

	v := vessel.MakeBuilder().
		WithEngine(engine).
		WithFreq(timing.Freq(orDefault(opts.Freq, s.Freq, 50))).
		WithDuration(orDefault(opts.Duration, s.Duration, 10)).
		WithWarp(warp).
		WithLibrary(lib).
		WithLogger(logger).
		Build(name)

	f := &Flight{Engine: engine, Vessel: v, Warp: warp, Library: lib}

	if err := s.buildParts(f); err != nil {
		return nil, err
	}

	if err := s.buildModules(f, logger); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Scenario) buildLibrary() (*resource.Library, error) {
	lib := resource.NewLibrary()

	for _, r := range s.Resources {
		flow, err := resource.ParseFlowMode(r.Flow)
		if err != nil {
			return nil, fmt.Errorf("resource %s: %w", r.Name, err)
		}

		if _, err := lib.Define(r.Name, r.Density, flow); err != nil {
			return nil, err
		}
	}

	return lib, nil
}

func parseCapabilities(names []string) (host.Capability, error) {
	var caps host.Capability

	for _, n := range names {
		switch n {
		case "fuelline":
			caps |= host.CapFuelLine
		case "segment":
			caps |= host.CapSegment
		default:
			return 0, fmt.Errorf("unknown capability %q", n)
		}
	}

	return caps, nil
}

func (s *Scenario) buildParts(f *Flight) error {
	for _, p := range s.Parts {
		caps, err := parseCapabilities(p.Capabilities)
		if err != nil {
			return fmt.Errorf("part %s: %w", p.ID, err)
		}

		part, err := f.Vessel.AddPart(host.PartID(p.ID), caps)
		if err != nil {
			return err
		}

		for _, pool := range p.Pools {
			def, _ := f.Library.ByName(pool.Resource)

			if _, exists := f.Vessel.Pool(part.ID(), def.ID); exists {
				return fmt.Errorf("part %s: two pools of %s", p.ID, def.Name)
			}

			added := part.AddPool(def.ID, pool.Amount, pool.MaxAmount)
			if err := added.Validate(); err != nil {
				return fmt.Errorf("part %s: %w", p.ID, err)
			}
		}

		if p.Engine != nil {
			if err := s.mountEngine(f, p); err != nil {
				return err
			}
		}
	}

	for _, p := range s.Parts {
		id := host.PartID(p.ID)

		if p.Parent != "" || p.Target != "" {
			err := f.Vessel.Connect(id, host.PartID(p.Parent), host.PartID(p.Target))
			if err != nil {
				return err
			}
		}

		if p.Above != "" {
			if err := f.Vessel.Stack(id, host.PartID(p.Above)); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Scenario) mountEngine(f *Flight, p Part) error {
	specs := make([]vessel.PropellantSpec, 0, len(p.Engine.Propellants))
	for _, prop := range p.Engine.Propellants {
		specs = append(specs, vessel.PropellantSpec{
			Resource: prop.Resource,
			Ratio:    prop.Ratio,
		})
	}

	e, err := vessel.NewEngine(f.Library, p.Engine.MaxThrust, p.Engine.Isp, specs)
	if err != nil {
		return fmt.Errorf("part %s: %w", p.ID, err)
	}

	if p.Engine.Throttle != nil {
		e.Throttle = *p.Engine.Throttle
	}

	return f.Vessel.MountEngine(host.PartID(p.ID), e)
}

func (s *Scenario) buildModules(f *Flight, logger logr.Logger) error {
	for _, m := range s.Modules {
		if err := naming.ValidateName(m.Name); err != nil {
			return fmt.Errorf("module %q: %w", m.Name, err)
		}

		switch m.Type {
		case TypeFuelLine:
			cfg, err := m.fuelLineConfig()
			if err != nil {
				return fmt.Errorf("module %s: %w", m.Name, err)
			}

			b := fuelline.MakeBuilder().
				WithHost(f.Vessel).
				WithConfig(cfg).
				WithLogger(logger).
				Build(m.Name, host.PartID(m.Part))
			f.Balancers = append(f.Balancers, b)
			f.Vessel.AddModule(b)
		case TypeSRB:
			cfg := m.srbConfig()
			shareGravity(f.Vessel, host.PartID(m.Part), cfg.Gravity)

			r := srb.MakeBuilder().
				WithHost(f.Vessel).
				WithConfig(cfg).
				WithLogger(logger).
				Build(m.Name, host.PartID(m.Part))
			f.Redistributors = append(f.Redistributors, r)
			f.Vessel.AddModule(r)
		}
	}

	return nil
}

// shareGravity makes the engine under a booster burn with the gravity the
// booster computes its demand with.
// An invalid gravity is left to the booster's activation check.
func shareGravity(v *vessel.Vessel, part host.PartID, g float64) {
	if !(g > 0) || math.IsInf(g, 0) {
		return
	}

	c, ok := v.Consumer(part)
	if !ok {
		return
	}

	if e, ok := c.(*vessel.Engine); ok {
		e.Gravity = g
	}
}

func (m Module) fuelLineConfig() (fuelline.Config, error) {
	cfg := fuelline.DefaultConfig()

	if m.FlowRate != nil {
		cfg.FlowRate = *m.FlowRate
	}

	if m.Driver != nil {
		cfg.DriverResource = *m.Driver
	}

	if m.ResourceUsage != nil {
		cfg.ResourceUsage = *m.ResourceUsage
	}

	if m.BalanceRatio != nil {
		cfg.BalanceRatio = *m.BalanceRatio
	}

	mode, err := fuelline.ParseMode(m.Mode)
	if err != nil {
		return cfg, err
	}

	cfg.Mode = mode

	dir, err := fuelline.ParseDirection(m.Direction)
	if err != nil {
		return cfg, err
	}

	cfg.Direction = dir

	return cfg, nil
}

func (m Module) srbConfig() srb.Config {
	cfg := srb.DefaultConfig()

	if m.Gravity != nil {
		cfg.Gravity = *m.Gravity
	}

	cfg.MaxSegments = m.MaxSegments

	return cfg
}
