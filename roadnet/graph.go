// Defines the RoadGraph, the weighted road network the route finder searches.
// The graph is supplied fully formed by an external collaborator (file loader,
// map-data importer) and is treated as immutable once handed to a session.

package roadnet

import (
	"fmt"
	"sort"
)

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Node is a road-network vertex: an intersection or shape point.
type Node struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// arc is one directed traversable segment. Undirected source edges are
// materialized as two arcs by the loader.
type arc struct {
	to     int64
	length float64 // meters
}

// RoadGraph is an adjacency-list road network with non-negative edge lengths.
// Connectivity is NOT guaranteed: disconnected regions are a valid, expected
// state of real map extracts, not a corruption.
type RoadGraph struct {
	nodes map[int64]Node
	adj   map[int64][]arc

	// ids holds node IDs in ascending order, rebuilt lazily. Iterating maps
	// directly would make nearest-node scans order-dependent between runs.
	ids      []int64
	idsStale bool

	numArcs int
}

// NewRoadGraph creates an empty road graph.
func NewRoadGraph() *RoadGraph {
	return &RoadGraph{
		nodes: make(map[int64]Node),
		adj:   make(map[int64][]arc),
	}
}

// AddNode inserts or replaces a node.
func (g *RoadGraph) AddNode(n Node) {
	if _, ok := g.nodes[n.ID]; !ok {
		g.idsStale = true
	}
	g.nodes[n.ID] = n
}

// AddArc inserts one directed segment from u to v. Both endpoints must
// already exist and the length must be non-negative.
func (g *RoadGraph) AddArc(u, v int64, length float64) error {
	if length < 0 {
		return fmt.Errorf("arc %d->%d has negative length %f", u, v, length)
	}
	if _, ok := g.nodes[u]; !ok {
		return fmt.Errorf("arc %d->%d references unknown node %d", u, v, u)
	}
	if _, ok := g.nodes[v]; !ok {
		return fmt.Errorf("arc %d->%d references unknown node %d", u, v, v)
	}
	g.adj[u] = append(g.adj[u], arc{to: v, length: length})
	g.numArcs++
	return nil
}

// Node returns the node with the given ID.
func (g *RoadGraph) Node(id int64) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NumNodes returns the number of nodes in the graph.
func (g *RoadGraph) NumNodes() int {
	return len(g.nodes)
}

// NumArcs returns the number of directed segments in the graph.
func (g *RoadGraph) NumArcs() int {
	return g.numArcs
}

// nodeIDs returns all node IDs in ascending order.
func (g *RoadGraph) nodeIDs() []int64 {
	if g.idsStale || len(g.ids) != len(g.nodes) {
		g.ids = g.ids[:0]
		for id := range g.nodes {
			g.ids = append(g.ids, id)
		}
		sort.Slice(g.ids, func(i, j int) bool { return g.ids[i] < g.ids[j] })
		g.idsStale = false
	}
	return g.ids
}

// arcsFrom returns the outgoing segments of u. Callers must not mutate the
// returned slice.
func (g *RoadGraph) arcsFrom(u int64) []arc {
	return g.adj[u]
}
