package host

import "errors"

// FaultKind classifies why a module stopped.
type FaultKind int

// Fault kinds.
const (
	// ConfigurationFault is raised on activation when the module is
	// misconfigured. It does not go away without reconfiguration.
	ConfigurationFault FaultKind = iota + 1

	// StructuralFault is raised when a part the module depends on is gone.
	StructuralFault

	// NoCompatibleResource is raised when the connected pools share no
	// resource the module can move.
	NoCompatibleResource
)

func (k FaultKind) String() string {
	switch k {
	case ConfigurationFault:
		return "configuration"
	case StructuralFault:
		return "structural"
	case NoCompatibleResource:
		return "no compatible resource"
	default:
		return "unknown"
	}
}

// Sentinel errors matching each fault kind with errors.Is.
var (
	ErrConfiguration        = errors.New("configuration fault")
	ErrStructural           = errors.New("structural fault")
	ErrNoCompatibleResource = errors.New("no compatible resource")
)

// A Fault is why a module deactivated itself. Its message is the status shown
// to the user.
type Fault struct {
	Kind   FaultKind
	Status string
}

// NewFault creates a Fault.
func NewFault(kind FaultKind, status string) *Fault {
	return &Fault{Kind: kind, Status: status}
}

func (f *Fault) Error() string {
	return f.Status
}

// Is makes errors.Is(f, ErrStructural) and friends work.
func (f *Fault) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return f.Kind == ConfigurationFault
	case ErrStructural:
		return f.Kind == StructuralFault
	case ErrNoCompatibleResource:
		return f.Kind == NoCompatibleResource
	}

	return false
}
