package routing

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/openroutenav/router/pkg/alert"
	"github.com/openroutenav/router/pkg/cost"
	"github.com/openroutenav/router/pkg/graph"
	"github.com/openroutenav/router/pkg/weights"
)

// ErrNoRoutes is returned when every requested criterion failed to find a
// path between origin and destination.
var ErrNoRoutes = errors.New("no valid routes found")

// Route is a single criterion's computed result.
type Route struct {
	Type       weights.Criterion
	DistanceKM float64
	Geometry   [][2]float64 // [lon, lat] pairs in path order
	Alerts     []alert.Alert
	Summary    string
}

// defaultCriteria is the set computed for every request, regardless of
// vehicle.
var defaultCriteria = []weights.Criterion{weights.Fastest, weights.BestSurface, weights.Safest}

// Criteria returns the criteria to compute for vehicle: the defaults, plus
// truck_compatible when the vehicle is a truck.
func Criteria(vehicle cost.Vehicle) []weights.Criterion {
	if vehicle.IsTruck() {
		return []weights.Criterion{weights.Fastest, weights.BestSurface, weights.Safest, weights.TruckCompatible}
	}
	return defaultCriteria
}

// Plan computes one Route per requested criterion, preserving canonical
// criterion order regardless of completion order. Criteria with no path
// are silently omitted. Returns ErrNoRoutes if none succeeded.
func Plan(ctx context.Context, g *graph.Graph, vehicle cost.Vehicle, criteria []weights.Criterion) ([]Route, error) {
	results := make([]*Route, len(criteria))

	var wg sync.WaitGroup
	for i, c := range criteria {
		wg.Add(1)
		go func(i int, c weights.Criterion) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			if r := planOne(g, vehicle, c); r != nil {
				results[i] = r
			}
		}(i, c)
	}
	wg.Wait()

	wanted := make(map[weights.Criterion]*Route, len(results))
	for i, c := range criteria {
		if results[i] != nil {
			wanted[c] = results[i]
		}
	}

	var routes []Route
	for _, c := range weights.AllCriteria {
		if r, ok := wanted[c]; ok {
			routes = append(routes, *r)
		}
	}
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}
	return routes, nil
}

func planOne(g *graph.Graph, vehicle cost.Vehicle, criterion weights.Criterion) *Route {
	weight := func(e graph.EdgeAttrs) float64 { return cost.Edge(e, criterion, vehicle) }

	path, ok := ShortestPath(g, graph.Origin, graph.Destination, weight)
	if !ok {
		return nil
	}

	var distanceKM float64
	var alerts []alert.Alert
	geometry := make([][2]float64, 0, len(path.Nodes))

	for _, n := range path.Nodes {
		c := g.Coord[n]
		geometry = append(geometry, [2]float64{c.Lon, c.Lat})
	}

	for i, e := range path.Edges {
		distanceKM += e.LengthKM
		if e.IsConnector {
			continue
		}
		terminus := g.Coord[path.Nodes[i+1]]
		alerts = append(alerts, alert.ForEdge(e, vehicle, terminus)...)
	}

	deduped := alert.Dedup(alerts)
	return &Route{
		Type:       criterion,
		DistanceKM: math.Round(distanceKM*100) / 100,
		Geometry:   geometry,
		Alerts:     deduped,
		Summary:    alert.Summarize(deduped),
	}
}

