// Package scenario loads simulation setups from YAML files.
//
// A scenario names the resource types, the parts of a vessel with their pools,
// links and engines, and the modules running on the parts. Build turns a
// scenario into a ready-to-run Flight.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Module types.
const (
	TypeFuelLine = "fuelline"
	TypeSRB      = "srb"
)

// Scenario is the content of a scenario file.
type Scenario struct {
	Name      string     `yaml:"name"`
	Freq      float64    `yaml:"freq"`
	Duration  float64    `yaml:"duration"`
	Warp      float64    `yaml:"warp"`
	Resources []Resource `yaml:"resources"`
	Parts     []Part     `yaml:"parts"`
	Modules   []Module   `yaml:"modules"`
}

// Resource defines a resource type.
type Resource struct {
	Name    string  `yaml:"name"`
	Density float64 `yaml:"density"`
	Flow    string  `yaml:"flow"`
}

// Part describes one part of the vessel.
type Part struct {
	ID           string   `yaml:"id"`
	Capabilities []string `yaml:"capabilities"`
	Pools        []Pool   `yaml:"pools"`
	Parent       string   `yaml:"parent"`
	Target       string   `yaml:"target"`
	Above        string   `yaml:"above"`
	Engine       *Engine  `yaml:"engine"`
}

// Pool is the initial state of a pool.
type Pool struct {
	Resource  string  `yaml:"resource"`
	Amount    float64 `yaml:"amount"`
	MaxAmount float64 `yaml:"max"`
}

// Engine describes an engine mounted on a part.
type Engine struct {
	MaxThrust   float64      `yaml:"max_thrust"`
	Isp         float64      `yaml:"isp"`
	Throttle    *float64     `yaml:"throttle"`
	Propellants []Propellant `yaml:"propellants"`
}

// Propellant is one constituent of an engine's mixture.
type Propellant struct {
	Resource string  `yaml:"resource"`
	Ratio    float64 `yaml:"ratio"`
}

// Module describes a module running on a part. Fields that do not apply to
// the module type are ignored; unset fields take the module's defaults.
type Module struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Part string `yaml:"part"`

	FlowRate      *float64 `yaml:"flow_rate"`
	Driver        *string  `yaml:"driver"`
	ResourceUsage *float64 `yaml:"resource_usage"`
	Mode          string   `yaml:"mode"`
	BalanceRatio  *float64 `yaml:"balance_ratio"`
	Direction     string   `yaml:"direction"`

	Gravity     *float64 `yaml:"gravity"`
	MaxSegments int      `yaml:"max_segments"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a scenario. Unknown fields are an error.
func Parse(data []byte) (*Scenario, error) {
	s := &Scenario{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks that every name a scenario refers to is defined.
func (s *Scenario) Validate() error {
	var errs []error

	resources := make(map[string]bool)
	for _, r := range s.Resources {
		resources[r.Name] = true
	}

	parts := make(map[string]bool)
	for _, p := range s.Parts {
		if parts[p.ID] {
			errs = append(errs, fmt.Errorf("part %s defined twice", p.ID))
		}

		parts[p.ID] = true
	}

	for _, p := range s.Parts {
		for _, pool := range p.Pools {
			if !resources[pool.Resource] {
				errs = append(errs, fmt.Errorf(
					"part %s: pool of unknown resource %s", p.ID, pool.Resource))
			}

			if !(pool.MaxAmount >= 0) || !(pool.Amount >= 0) ||
				pool.Amount > pool.MaxAmount || math.IsInf(pool.MaxAmount, 0) {
				errs = append(errs, fmt.Errorf(
					"part %s: %s pool amount %g does not fit capacity %g",
					p.ID, pool.Resource, pool.Amount, pool.MaxAmount))
			}
		}

		for _, link := range []string{p.Parent, p.Target, p.Above} {
			if link != "" && !parts[link] {
				errs = append(errs, fmt.Errorf(
					"part %s: link to unknown part %s", p.ID, link))
			}
		}

		if p.Engine != nil {
			for _, prop := range p.Engine.Propellants {
				if !resources[prop.Resource] {
					errs = append(errs, fmt.Errorf(
						"part %s: engine burns unknown resource %s",
						p.ID, prop.Resource))
				}
			}
		}
	}

	names := make(map[string]bool)
	owners := make(map[string]string)

	for _, m := range s.Modules {
		if names[m.Name] {
			errs = append(errs, fmt.Errorf("module %s defined twice", m.Name))
		}

		names[m.Name] = true

		if other, taken := owners[m.Part]; taken {
			errs = append(errs, fmt.Errorf(
				"module %s: part %s already carries module %s",
				m.Name, m.Part, other))
		} else {
			owners[m.Part] = m.Name
		}

		if !parts[m.Part] {
			errs = append(errs, fmt.Errorf(
				"module %s: unknown part %s", m.Name, m.Part))
		}

		if m.Type != TypeFuelLine && m.Type != TypeSRB {
			errs = append(errs, fmt.Errorf(
				"module %s: unknown type %q", m.Name, m.Type))
		}
	}

	return errors.Join(errs...)
}
