package fuelline

import (
	"math"

	"github.com/sarchlab/fuelsim/resource"
)

// The flow functions return the signed amount that should move into pool a
// this tick, before rate and driver limits. Negative values move resource
// from a into b. None of them ever asks for more than the giver holds or the
// receiver can take.

func equalizeFlow(a, b *resource.Pool) float64 {
	capacity := a.MaxAmount + b.MaxAmount
	if capacity <= 0 {
		return 0
	}

	targetRatio := (a.Amount + b.Amount) / capacity

	receiver, giver, sign := a, b, 1.0
	if b.FillRatio() < a.FillRatio() {
		receiver, giver, sign = b, a, -1.0
	}

	deficit := targetRatio*receiver.MaxAmount - receiver.Amount
	surplus := giver.Amount - targetRatio*giver.MaxAmount

	return sign * math.Max(0, math.Min(deficit, surplus))
}

func weightedFlow(a, b *resource.Pool, balanceRatio float64) float64 {
	total := a.Amount + b.Amount
	weight := balanceRatio*a.MaxAmount + (1-balanceRatio)*b.MaxAmount

	if weight <= 0 {
		return 0
	}

	scale := total / weight
	aTarget := math.Min(a.MaxAmount, balanceRatio*scale*a.MaxAmount)
	bTarget := total - aTarget

	if bTarget > b.MaxAmount {
		bTarget = b.MaxAmount
		aTarget = total - bTarget
	}

	flow := aTarget - a.Amount
	if alt := b.Amount - bTarget; math.Abs(alt) < math.Abs(flow) {
		flow = alt
	}

	return flow
}

func drainFlow(a, b *resource.Pool, dir Direction) float64 {
	if dir == TargetToParent {
		return math.Max(0, math.Min(b.Amount, a.Headroom()))
	}

	return -math.Max(0, math.Min(a.Amount, b.Headroom()))
}

func capMagnitude(flow, limit float64) float64 {
	if math.Abs(flow) > limit {
		return math.Copysign(limit, flow)
	}

	return flow
}
