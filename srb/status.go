package srb

// Status texts shown by a redistributor.
const (
	StatusIdle         = "Idle"
	StatusInactive     = "Inactive"
	StatusActive       = "Active"
	StatusNotSegment   = "Part not segment"
	StatusBadConfig    = "Invalid booster configuration!"
	StatusNoEngine     = "No engine module!"
	StatusNoPropellant = "No propellant left!"
)

// MetricDemand is the propellant mass per second the engine asked for.
const MetricDemand = "Propellant Demand"
