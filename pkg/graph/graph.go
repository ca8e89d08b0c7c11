// Package graph materializes an OSM payload plus two terminals into the
// directed multigraph the route planner searches.
package graph

import "github.com/openroutenav/router/pkg/geo"

// NodeID is either a raw OSM node id or one of the two reserved terminal
// ids. The reserved ids never collide with real OSM ids (OSM node ids are
// always positive; the terminal ids are always negative).
type NodeID int64

const (
	// Origin is the synthetic node id for the route's start point.
	Origin NodeID = -1
	// Destination is the synthetic node id for the route's end point.
	Destination NodeID = -2
)

// EdgeAttrs is the normalized per-edge payload.
type EdgeAttrs struct {
	LengthKM     float64
	HighwayClass string

	Surface       string
	HasSurface    bool
	Smoothness    string
	HasSmoothness bool
	TrackType     string
	HasTrackType  bool

	Lit               string
	HasLit            bool
	TrafficSignals    bool
	HasTrafficSignals bool

	MaxspeedKMH  int
	HasMaxspeed  bool
	MaxheightM   float64
	HasMaxheight bool
	MaxweightT   float64
	HasMaxweight bool

	HGV      string
	Access   string
	Lanes    int
	HasLanes bool

	Oneway      bool
	Name        string
	IsConnector bool
}

// Edge is a directed edge to node To carrying the normalized attributes.
type Edge struct {
	To    NodeID
	Attrs EdgeAttrs
}

// Graph is a directed multigraph keyed by NodeID. Parallel edges between
// the same pair of nodes are preserved, never deduplicated: different
// tags on parallel ways yield different costs and different alerts.
type Graph struct {
	Coord map[NodeID]geo.Coordinate
	Adj   map[NodeID][]Edge
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		Coord: make(map[NodeID]geo.Coordinate),
		Adj:   make(map[NodeID][]Edge),
	}
}

// AddNode registers a node's coordinate if not already present.
func (g *Graph) AddNode(id NodeID, c geo.Coordinate) {
	if _, ok := g.Coord[id]; !ok {
		g.Coord[id] = c
	}
}

// AddEdge appends a directed edge from u. u and v must already have
// coordinates registered via AddNode.
func (g *Graph) AddEdge(u NodeID, e Edge) {
	g.Adj[u] = append(g.Adj[u], e)
}

// NumNodes returns the number of distinct node ids with coordinates.
func (g *Graph) NumNodes() int {
	return len(g.Coord)
}

// NumEdges returns the total directed edge count.
func (g *Graph) NumEdges() int {
	n := 0
	for _, edges := range g.Adj {
		n += len(edges)
	}
	return n
}
