package fuelline

// Status texts shown by a balancer.
const (
	StatusIdle            = "Idle"
	StatusInactive        = "Inactive"
	StatusActive          = "Active"
	StatusNotFuelLine     = "Part not fuel line"
	StatusRatioOutOfRange = "Target balance out of range!"
	StatusFlowOutOfRange  = "Flow rate out of range!"
	StatusUnknownMode     = "Unknown balance mode!"
	StatusNoParent        = "No parent part!"
	StatusNoTarget        = "No target part!"
	StatusNoResources     = "No transferable resources found!"
)

// Metric names reported to the host.
const (
	MetricFlow = "Resource Flow"
	MetricDraw = "Resource Draw"
)

func statusResourceNotFound(name string) string {
	return "Resource not found: " + name
}

func statusLowDriver(name string) string {
	return "Low " + name + "!"
}
