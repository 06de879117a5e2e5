// Implements the route finder: nearest-node lookup at both endpoints
// followed by a shortest-path query over the weighted road graph.

package roadnet

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

var (
	// ErrGraphUnavailable is reported when a route is requested before a
	// road graph has been supplied. Recoverable by loading a graph later.
	ErrGraphUnavailable = errors.New("road graph unavailable")

	// ErrNoPath is reported when origin and destination resolve to nodes in
	// disconnected components. Distinct from ErrGraphUnavailable: the graph
	// is present and valid, it just has no connecting path.
	ErrNoPath = errors.New("no path between origin and destination")
)

// RouteResult is the outcome of one shortest-route query: the traversed
// node IDs in order and the summed arc length. Consumed immediately by the
// caller, never persisted.
type RouteResult struct {
	NodeIDs      []int64 `json:"node_ids"`
	LengthMeters float64 `json:"length_meters"`
}

// ComputeRoute finds the shortest drivable route between the graph nodes
// nearest to origin and dest. Identical graph and coordinates always yield
// an identical path and length. The search checks ctx while it runs, so
// callers may bound a query over a large graph with a deadline.
func ComputeRoute(ctx context.Context, g *RoadGraph, origin, dest Coordinates) (*RouteResult, error) {
	if g == nil || g.NumNodes() == 0 {
		return nil, ErrGraphUnavailable
	}

	source, ok := g.NearestNode(origin)
	if !ok {
		return nil, ErrGraphUnavailable
	}
	target, ok := g.NearestNode(dest)
	if !ok {
		return nil, ErrGraphUnavailable
	}

	path, length, err := g.shortestPath(ctx, source, target)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("route %d->%d: %d nodes, %.1fm", source, target, len(path), length)
	return &RouteResult{NodeIDs: path, LengthMeters: length}, nil
}
