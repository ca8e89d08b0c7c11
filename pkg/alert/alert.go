// Package alert derives rider-facing warnings from a graph edge and
// summarizes them for a finished route.
package alert

import (
	"fmt"
	"sort"

	"github.com/openroutenav/router/pkg/cost"
	"github.com/openroutenav/router/pkg/geo"
	"github.com/openroutenav/router/pkg/graph"
)

// Severity is the alert's urgency tier.
type Severity string

const (
	Red    Severity = "red"
	Yellow Severity = "yellow"
	Green  Severity = "green"
)

// severityRank orders severities for deduplication: most urgent first.
var severityRank = map[Severity]int{Red: 0, Yellow: 1, Green: 2}

// Alert is a single warning tied to an optional location on the route.
type Alert struct {
	Level    Severity
	Message  string
	Location *geo.Coordinate
}

// maxAlerts bounds the number of alerts returned for a route.
const maxAlerts = 10

// ForEdge generates the alerts that apply to e for vehicle, located at at.
// Connector edges never carry alerts: they are synthetic snap segments,
// not real road.
func ForEdge(e graph.EdgeAttrs, vehicle cost.Vehicle, at geo.Coordinate) []Alert {
	if e.IsConnector {
		return nil
	}

	var alerts []Alert
	loc := at

	if e.HasSurface {
		switch e.Surface {
		case "unpaved", "dirt", "gravel", "mud":
			alerts = append(alerts, Alert{Yellow, fmt.Sprintf("Unpaved road: %s", e.Surface), &loc})
		}
		switch e.Surface {
		case "mud", "sand":
			alerts = append(alerts, Alert{Red, fmt.Sprintf("Poor surface condition: %s", e.Surface), &loc})
		}
	}

	if e.HasSmoothness {
		switch e.Smoothness {
		case "horrible", "very_horrible", "impassable":
			alerts = append(alerts, Alert{Red, fmt.Sprintf("Very poor road quality: %s", e.Smoothness), &loc})
		case "bad", "very_bad":
			alerts = append(alerts, Alert{Yellow, fmt.Sprintf("Road quality: %s", e.Smoothness), &loc})
		}
	}

	if e.HasLit && e.Lit == "no" {
		alerts = append(alerts, Alert{Yellow, "No street lighting", &loc})
	}

	if e.HasMaxspeed && e.MaxspeedKMH > 100 {
		alerts = append(alerts, Alert{Yellow, fmt.Sprintf("High speed road: %d km/h", e.MaxspeedKMH), &loc})
	}

	if vehicle.IsTruck() {
		alerts = append(alerts, truckAlerts(e, vehicle, loc)...)
	}

	return alerts
}

func truckAlerts(e graph.EdgeAttrs, v cost.Vehicle, loc geo.Coordinate) []Alert {
	var alerts []Alert

	if e.HasMaxheight && v.HeightM > 0 {
		switch {
		case v.HeightM > e.MaxheightM:
			alerts = append(alerts, Alert{Red, fmt.Sprintf("Height restriction: %.1fm (vehicle: %.1fm)", e.MaxheightM, v.HeightM), &loc})
		case v.HeightM > e.MaxheightM*0.9:
			alerts = append(alerts, Alert{Yellow, fmt.Sprintf("Tight clearance: %.1fm (vehicle: %.1fm)", e.MaxheightM, v.HeightM), &loc})
		}
	}

	if e.HasMaxweight && v.WeightT > 0 {
		switch {
		case v.WeightT > e.MaxweightT:
			alerts = append(alerts, Alert{Red, fmt.Sprintf("Weight restriction: %.1ft (vehicle: %.1ft)", e.MaxweightT, v.WeightT), &loc})
		case v.WeightT > e.MaxweightT*0.9:
			alerts = append(alerts, Alert{Yellow, fmt.Sprintf("Near weight limit: %.1ft (vehicle: %.1ft)", e.MaxweightT, v.WeightT), &loc})
		}
	}

	switch e.HGV {
	case "no":
		alerts = append(alerts, Alert{Red, "Trucks not allowed (HGV restriction)", &loc})
	case "destination":
		alerts = append(alerts, Alert{Yellow, "Destination traffic only for trucks", &loc})
	}

	switch e.Access {
	case "private", "no":
		alerts = append(alerts, Alert{Red, fmt.Sprintf("Access restricted: %s", e.Access), &loc})
	case "delivery", "destination":
		alerts = append(alerts, Alert{Yellow, fmt.Sprintf("Limited access: %s", e.Access), &loc})
	}

	return alerts
}

// Dedup sorts alerts by severity, keeps the first occurrence of each
// distinct message, and truncates the result to maxAlerts.
func Dedup(alerts []Alert) []Alert {
	sorted := make([]Alert, len(alerts))
	copy(sorted, alerts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return severityRank[sorted[i].Level] < severityRank[sorted[j].Level]
	})

	seen := make(map[string]bool, len(sorted))
	out := make([]Alert, 0, len(sorted))
	for _, a := range sorted {
		if seen[a.Message] {
			continue
		}
		seen[a.Message] = true
		out = append(out, a)
		if len(out) == maxAlerts {
			break
		}
	}
	return out
}

// Summarize builds a human-readable count of a route's alerts.
func Summarize(alerts []Alert) string {
	if len(alerts) == 0 {
		return "Route is clear with no warnings"
	}

	red, yellow := 0, 0
	for _, a := range alerts {
		switch a.Level {
		case Red:
			red++
		case Yellow:
			yellow++
		}
	}

	var parts []string
	if red > 0 {
		parts = append(parts, fmt.Sprintf("%d critical alert(s)", red))
	}
	if yellow > 0 {
		parts = append(parts, fmt.Sprintf("%d caution(s)", yellow))
	}
	if len(parts) == 0 {
		return "Route is clear"
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}
