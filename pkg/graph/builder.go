package graph

import (
	"sort"

	"github.com/paulmach/osm"

	"github.com/openroutenav/router/pkg/geo"
	"github.com/openroutenav/router/pkg/osmfetch"
	"github.com/openroutenav/router/pkg/tags"
)

// DefaultSnapK is the number of nearest OSM nodes each terminal connects to.
const DefaultSnapK = 5

// BuildOptions configures Build. A zero value uses DefaultSnapK.
type BuildOptions struct {
	SnapK int
}

// toOSMTags adapts a raw Overpass tag map into paulmach/osm's Tags type so
// tag lookups go through its Find accessor.
func toOSMTags(raw map[string]string) osm.Tags {
	t := make(osm.Tags, 0, len(raw))
	for k, v := range raw {
		t = append(t, osm.Tag{Key: k, Value: v})
	}
	return t
}

// normalizeWay converts a way's raw tags into the normalized edge payload.
// LengthKM and IsConnector are filled in by the caller per edge instance.
func normalizeWay(t osm.Tags) EdgeAttrs {
	a := EdgeAttrs{
		HighwayClass: t.Find("highway"),
		HGV:          t.Find("hgv"),
		Access:       t.Find("access"),
		Oneway:       tags.Oneway(t.Find("oneway")),
		Name:         t.Find("name"),
	}
	if a.Name == "" {
		a.Name = "Unnamed"
	}
	if a.HighwayClass == "" {
		a.HighwayClass = "unclassified"
	}

	if s, ok := tags.String(t.Find("surface")); ok {
		a.Surface, a.HasSurface = s, true
	}
	if s, ok := tags.String(t.Find("smoothness")); ok {
		a.Smoothness, a.HasSmoothness = s, true
	}
	if s, ok := tags.String(t.Find("tracktype")); ok {
		a.TrackType, a.HasTrackType = s, true
	}
	if s, ok := tags.String(t.Find("lit")); ok {
		a.Lit, a.HasLit = s, true
	}
	if v := t.Find("traffic_signals"); v != "" {
		a.TrafficSignals, a.HasTrafficSignals = true, true
	}
	if n, ok := tags.Maxspeed(t.Find("maxspeed")); ok {
		a.MaxspeedKMH, a.HasMaxspeed = n, true
	}
	if f, ok := tags.Metric(t.Find("maxheight")); ok {
		a.MaxheightM, a.HasMaxheight = f, true
	}
	if f, ok := tags.Metric(t.Find("maxweight")); ok {
		a.MaxweightT, a.HasMaxweight = f, true
	}
	if n, ok := tags.Int(t.Find("lanes")); ok {
		a.Lanes, a.HasLanes = n, true
	}
	return a
}

// Build materializes a raw Overpass payload plus two terminals into a
// directed multigraph.
func Build(resp *osmfetch.Response, origin, destination geo.Coordinate, opts ...BuildOptions) *Graph {
	opt := BuildOptions{SnapK: DefaultSnapK}
	if len(opts) > 0 && opts[0].SnapK > 0 {
		opt.SnapK = opts[0].SnapK
	}

	g := New()

	// Step 1: node id -> coordinate lookup.
	nodeCoord := make(map[NodeID]geo.Coordinate)
	for _, el := range resp.Elements {
		if el.Type == "node" {
			nodeCoord[NodeID(el.ID)] = geo.Coordinate{Lat: el.Lat, Lon: el.Lon}
		}
	}

	// Step 2: terminal nodes.
	g.AddNode(Origin, origin)
	g.AddNode(Destination, destination)

	// Step 3: ways -> edges.
	for _, el := range resp.Elements {
		if el.Type != "way" {
			continue
		}
		attrs := normalizeWay(toOSMTags(el.Tags))

		for i := 0; i+1 < len(el.Nodes); i++ {
			u := NodeID(el.Nodes[i])
			v := NodeID(el.Nodes[i+1])

			uc, uok := nodeCoord[u]
			vc, vok := nodeCoord[v]
			if !uok || !vok {
				// Malformed OSM fragment: an endpoint node is missing from
				// the fetched element set. Skip silently.
				continue
			}

			edgeAttrs := attrs
			edgeAttrs.LengthKM = geo.DistanceKM(uc, vc)

			g.AddNode(u, uc)
			g.AddNode(v, vc)
			g.AddEdge(u, Edge{To: v, Attrs: edgeAttrs})
			if !attrs.Oneway {
				g.AddEdge(v, Edge{To: u, Attrs: edgeAttrs})
			}
		}
	}

	// Step 4: terminal snapping.
	snapTerminal(g, Origin, origin, opt.SnapK)
	snapTerminal(g, Destination, destination, opt.SnapK)

	return g
}

// snapTerminal connects terminal t to its k nearest OSM nodes already in
// the graph with bidirectional connector edges.
func snapTerminal(g *Graph, t NodeID, at geo.Coordinate, k int) {
	type candidate struct {
		id   NodeID
		dist float64
	}

	candidates := make([]candidate, 0, len(g.Coord))
	for id, c := range g.Coord {
		if id == Origin || id == Destination {
			continue
		}
		candidates = append(candidates, candidate{id: id, dist: geo.DistanceKM(at, c)})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	for _, c := range candidates {
		connector := EdgeAttrs{LengthKM: c.dist, IsConnector: true}
		g.AddEdge(t, Edge{To: c.id, Attrs: connector})
		g.AddEdge(c.id, Edge{To: t, Attrs: connector})
	}
}
