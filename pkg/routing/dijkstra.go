package routing

import (
	"math"

	"github.com/openroutenav/router/pkg/graph"
)

// pqItem is a priority queue entry.
type pqItem struct {
	Node graph.NodeID
	Dist float64
}

// minHeap is a concrete-typed min-heap for the Dijkstra priority queue.
// Avoids interface boxing overhead of container/heap.
type minHeap struct {
	items []pqItem
}

func (h *minHeap) Len() int { return len(h.items) }

func (h *minHeap) Push(node graph.NodeID, dist float64) {
	h.items = append(h.items, pqItem{node, dist})
	h.siftUp(len(h.items) - 1)
}

func (h *minHeap) Pop() pqItem {
	n := len(h.items)
	item := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return item
}

func (h *minHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].Dist >= h.items[parent].Dist {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *minHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.items[left].Dist < h.items[smallest].Dist {
			smallest = left
		}
		if right < n && h.items[right].Dist < h.items[smallest].Dist {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

// WeightFunc scores a single directed edge. Returning math.Inf(1) marks the
// edge impassable.
type WeightFunc func(graph.EdgeAttrs) float64

// Path is a shortest path result: the node sequence from source to target,
// the edge attributes chosen for each hop (len(Edges) == len(Nodes)-1), and
// the total weight.
type Path struct {
	Nodes  []graph.NodeID
	Edges  []graph.EdgeAttrs
	Weight float64
}

// ShortestPath runs a single-source Dijkstra search from source to target
// over g, scoring each edge with weight. When a node has multiple parallel
// edges to the same neighbor, the minimum-weight edge among them is used,
// and that edge's attributes are recorded for the returned path.
// Returns ok=false if target is unreachable.
func ShortestPath(g *graph.Graph, source, target graph.NodeID, weight WeightFunc) (Path, bool) {
	dist := make(map[graph.NodeID]float64, g.NumNodes())
	pred := make(map[graph.NodeID]graph.NodeID, g.NumNodes())
	predEdge := make(map[graph.NodeID]graph.EdgeAttrs, g.NumNodes())
	visited := make(map[graph.NodeID]bool, g.NumNodes())

	dist[source] = 0
	var pq minHeap
	pq.Push(source, 0)

	for pq.Len() > 0 {
		cur := pq.Pop()
		if visited[cur.Node] {
			continue
		}
		visited[cur.Node] = true
		if cur.Node == target {
			break
		}

		best := make(map[graph.NodeID]graph.EdgeAttrs)
		bestWeight := make(map[graph.NodeID]float64)
		for _, e := range g.Adj[cur.Node] {
			w := weight(e.Attrs)
			if math.IsInf(w, 1) {
				continue
			}
			if prev, ok := bestWeight[e.To]; !ok || w < prev {
				bestWeight[e.To] = w
				best[e.To] = e.Attrs
			}
		}

		for to, w := range bestWeight {
			if visited[to] {
				continue
			}
			nd := cur.Dist + w
			if existing, ok := dist[to]; !ok || nd < existing {
				dist[to] = nd
				pred[to] = cur.Node
				predEdge[to] = best[to]
				pq.Push(to, nd)
			}
		}
	}

	finalDist, ok := dist[target]
	if !ok {
		return Path{}, false
	}

	var nodes []graph.NodeID
	var edges []graph.EdgeAttrs
	for n := target; ; {
		nodes = append(nodes, n)
		if n == source {
			break
		}
		p, ok := pred[n]
		if !ok {
			return Path{}, false
		}
		edges = append(edges, predEdge[n])
		n = p
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return Path{Nodes: nodes, Edges: edges, Weight: finalDist}, true
}
