package routing

import (
	"context"
	"testing"

	"github.com/openroutenav/router/pkg/cost"
	"github.com/openroutenav/router/pkg/geo"
	"github.com/openroutenav/router/pkg/graph"
	"github.com/openroutenav/router/pkg/weights"
)

func simpleRouteGraph() *graph.Graph {
	g := graph.New()
	g.AddNode(graph.Origin, geo.Coordinate{Lat: 1.000, Lon: 103.000})
	g.AddNode(graph.Destination, geo.Coordinate{Lat: 1.002, Lon: 103.000})
	g.AddNode(1, geo.Coordinate{Lat: 1.001, Lon: 103.000})

	connector := graph.EdgeAttrs{LengthKM: 0.1, IsConnector: true}
	g.AddEdge(graph.Origin, graph.Edge{To: 1, Attrs: connector})
	g.AddEdge(1, graph.Edge{To: graph.Origin, Attrs: connector})
	g.AddEdge(graph.Destination, graph.Edge{To: 1, Attrs: connector})
	g.AddEdge(1, graph.Edge{To: graph.Destination, Attrs: connector})

	return g
}

func TestPlanReturnsCanonicalOrder(t *testing.T) {
	g := simpleRouteGraph()
	routes, err := Plan(context.Background(), g, cost.Vehicle{}, Criteria(cost.Vehicle{}))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(routes) != 3 {
		t.Fatalf("len(routes) = %d, want 3", len(routes))
	}
	want := []weights.Criterion{weights.Fastest, weights.BestSurface, weights.Safest}
	for i, r := range routes {
		if r.Type != want[i] {
			t.Errorf("routes[%d].Type = %s, want %s", i, r.Type, want[i])
		}
	}
}

func TestPlanIncludesTruckCompatibleForTrucks(t *testing.T) {
	g := simpleRouteGraph()
	truck := cost.Vehicle{VehicleType: "truck"}
	routes, err := Plan(context.Background(), g, truck, Criteria(truck))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(routes) != 4 {
		t.Fatalf("len(routes) = %d, want 4", len(routes))
	}
	if routes[3].Type != weights.TruckCompatible {
		t.Errorf("routes[3].Type = %s, want %s", routes[3].Type, weights.TruckCompatible)
	}
}

func TestPlanNoRoutesError(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Origin, geo.Coordinate{Lat: 1.0, Lon: 103.0})
	g.AddNode(graph.Destination, geo.Coordinate{Lat: 1.1, Lon: 103.0})
	// No edges at all: every criterion fails.
	_, err := Plan(context.Background(), g, cost.Vehicle{}, Criteria(cost.Vehicle{}))
	if err != ErrNoRoutes {
		t.Fatalf("err = %v, want ErrNoRoutes", err)
	}
}

func TestPlanSkipsBlockedTruckCriterionSilently(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Origin, geo.Coordinate{Lat: 1.000, Lon: 103.000})
	g.AddNode(graph.Destination, geo.Coordinate{Lat: 1.002, Lon: 103.000})
	g.AddNode(1, geo.Coordinate{Lat: 1.001, Lon: 103.000})

	blocked := graph.EdgeAttrs{LengthKM: 1, HighwayClass: "residential", HGV: "no"}
	connector := graph.EdgeAttrs{LengthKM: 0.1, IsConnector: true}
	g.AddEdge(graph.Origin, graph.Edge{To: 1, Attrs: connector})
	g.AddEdge(1, graph.Edge{To: graph.Destination, Attrs: blocked})

	truck := cost.Vehicle{VehicleType: "truck"}
	routes, err := Plan(context.Background(), g, truck, Criteria(truck))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	for _, r := range routes {
		if r.Type == weights.TruckCompatible {
			t.Fatalf("truck_compatible should have been silently skipped, got route %+v", r)
		}
	}
}

func TestPlanGeometryTerminatesAtDestination(t *testing.T) {
	g := simpleRouteGraph()
	routes, err := Plan(context.Background(), g, cost.Vehicle{}, Criteria(cost.Vehicle{}))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	for _, r := range routes {
		last := r.Geometry[len(r.Geometry)-1]
		if last[1] != 1.002 || last[0] != 103.000 {
			t.Errorf("route %s geometry ends at %v, want destination", r.Type, last)
		}
	}
}
