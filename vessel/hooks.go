package vessel

import (
	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/sim/hooking"
	"github.com/sarchlab/fuelsim/sim/timing"
)

// HookPosStatus is triggered when a module reports a status. The item is a
// StatusReport.
var HookPosStatus = &hooking.HookPos{Name: "Status"}

// HookPosRate is triggered when a module reports a rate. The item is a
// RateReport.
var HookPosRate = &hooking.HookPos{Name: "Rate"}

// HookPosTick is triggered after every vessel tick. The item is a TickReport.
var HookPosTick = &hooking.HookPos{Name: "Tick"}

// StatusReport is a status shown by the module on a part.
type StatusReport struct {
	Time   timing.VTimeInSec
	Part   host.PartID
	Status string
}

// RateReport is a named reading reported by the module on a part.
type RateReport struct {
	Time   timing.VTimeInSec
	Part   host.PartID
	Metric string
	Value  float64
}

// TickReport describes a finished vessel tick.
type TickReport struct {
	Time     timing.VTimeInSec
	Duration timing.VTimeInSec
	Count    uint64
	EndTime  timing.VTimeInSec
}
