package fuelline

import "fmt"

// Mode selects how a balancer decides where resource should flow.
type Mode int

// Balance modes.
const (
	// ModeEqualize moves resource from the fuller pool into the emptier one
	// until both have the same fill ratio.
	ModeEqualize Mode = iota
	// ModeWeighted converges towards fill ratios that stand in the proportion
	// BalanceRatio : 1-BalanceRatio. A ratio of 0.5 is the same as
	// ModeEqualize. The targets are scaled so that they hold exactly the
	// current total, unlike the plain BalanceRatio*targetRatio*capacity
	// target, which is not conserved and can move resource away from the
	// emptier pool.
	ModeWeighted
	// ModeDrain empties one pool into the other in a fixed direction.
	ModeDrain
)

func (m Mode) String() string {
	switch m {
	case ModeEqualize:
		return "equalize"
	case ModeWeighted:
		return "weighted"
	case ModeDrain:
		return "drain"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the textual mode used in configuration files.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "equalize", "":
		return ModeEqualize, nil
	case "weighted":
		return ModeWeighted, nil
	case "drain":
		return ModeDrain, nil
	default:
		return ModeEqualize, fmt.Errorf("unknown balance mode %q", s)
	}
}

// Direction is the fixed direction of ModeDrain.
type Direction int

// Drain directions. The parent is pool A, the target pool B.
const (
	ParentToTarget Direction = iota
	TargetToParent
)

// ParseDirection converts the textual direction used in configuration files.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "parent-to-target", "":
		return ParentToTarget, nil
	case "target-to-parent":
		return TargetToParent, nil
	default:
		return ParentToTarget, fmt.Errorf("unknown drain direction %q", s)
	}
}

// Config is what a balancer is set up with. It is validated on activation.
type Config struct {
	// FlowRate is the most resource moved per second, per resource type.
	FlowRate float64

	// DriverResource is the name of the resource consumed to move resource.
	DriverResource string

	// ResourceUsage is the driver units consumed per unit moved.
	ResourceUsage float64

	Mode Mode

	// BalanceRatio only applies to ModeWeighted. It must lie in [0, 1].
	BalanceRatio float64

	// Direction only applies to ModeDrain.
	Direction Direction
}

// DefaultConfig returns the configuration of a stock balancing line.
func DefaultConfig() Config {
	return Config{
		FlowRate:       10,
		DriverResource: "ElectricCharge",
		ResourceUsage:  0.1,
		Mode:           ModeEqualize,
		BalanceRatio:   0.5,
	}
}
