// Package cost turns a normalized graph edge into a per-criterion scalar
// weight, and decides whether a vehicle may legally traverse it at all.
package cost

import (
	"math"

	"github.com/openroutenav/router/pkg/graph"
	"github.com/openroutenav/router/pkg/weights"
)

// Vehicle describes the vehicle being routed. A zero value (VehicleType
// unset) means no truck-specific restriction applies.
type Vehicle struct {
	VehicleType string // "truck" enables hgv/access/height/weight checks
	HeightM     float64
	WeightT     float64
}

// IsTruck reports whether restriction checks should run for this vehicle.
func (v Vehicle) IsTruck() bool { return v.VehicleType == "truck" }

// Edge computes the weight of e under criterion for vehicle. Lower is
// better; math.Inf(1) means the edge is legally closed to vehicle and must
// never be taken.
func Edge(e graph.EdgeAttrs, criterion weights.Criterion, vehicle Vehicle) float64 {
	if e.IsConnector {
		return e.LengthKM
	}

	mult, ok := weights.CriteriaMultipliers[criterion]
	if !ok {
		mult = weights.CriteriaMultipliers[weights.Fastest]
	}

	highway := highwayWeight(e)
	surface := surfaceWeight(e)
	smoothness := smoothnessWeight(e)
	safety := safetyWeight(e)

	total := e.LengthKM * mult.Distance *
		(1 + highway*mult.HighwayType) *
		(1 + surface*mult.Surface) *
		(1 + smoothness*mult.Smoothness) *
		(1 + safety*mult.Safety)

	if criterion == weights.TruckCompatible && vehicle.IsTruck() {
		penalty := truckPenalty(e, vehicle)
		if math.IsInf(penalty, 1) {
			return math.Inf(1)
		}
		total *= penalty
	}

	return total
}

func highwayWeight(e graph.EdgeAttrs) float64 {
	w, ok := weights.Highway[e.HighwayClass]
	if !ok {
		w = weights.Highway["default"]
	}
	return w - 1.0
}

func surfaceWeight(e graph.EdgeAttrs) float64 {
	if !e.HasSurface {
		return 0.0
	}
	w, ok := weights.Surface[e.Surface]
	if !ok {
		w = weights.Surface["default"]
	}
	return w - 1.0
}

func smoothnessWeight(e graph.EdgeAttrs) float64 {
	if !e.HasSmoothness {
		return 0.0
	}
	w, ok := weights.Smoothness[e.Smoothness]
	if !ok {
		w = weights.Smoothness["default"]
	}
	return w - 1.0
}

func safetyWeight(e graph.EdgeAttrs) float64 {
	factor := 1.0

	if e.HasLit {
		lit, ok := weights.LitFactor[e.Lit]
		if !ok {
			lit = weights.LitFactor["default"]
		}
		factor *= lit
	} else {
		factor *= weights.LitFactor["default"]
	}

	if e.HasTrafficSignals && e.TrafficSignals {
		factor *= weights.TrafficSignalsYes
	}

	maxspeed := weights.DefaultMaxspeedKMH
	if e.HasMaxspeed {
		maxspeed = e.MaxspeedKMH
	}
	factor *= weights.SpeedPenalty(maxspeed)

	return factor - 1.0
}

// truckPenalty returns the legality multiplier for a truck on e: +Inf for
// hard restrictions, a soft multiplier (>1) for discouraged-but-legal
// segments, and 1.0 when unrestricted.
func truckPenalty(e graph.EdgeAttrs, v Vehicle) float64 {
	if e.HasMaxheight && v.HeightM > 0 && v.HeightM > e.MaxheightM {
		return math.Inf(1)
	}
	if e.HasMaxweight && v.WeightT > 0 && v.WeightT > e.MaxweightT {
		return math.Inf(1)
	}
	if e.HGV == "no" {
		return math.Inf(1)
	}
	if e.Access == "private" || e.Access == "no" {
		return math.Inf(1)
	}

	penalty := 1.0
	if e.HGV == "destination" {
		penalty *= 2.0
	}
	if e.Access == "delivery" {
		penalty *= 1.5
	}
	return penalty
}
