package roadnet

import (
	"container/heap"
	"context"
)

// frontierItem is one entry in the Dijkstra frontier.
type frontierItem struct {
	node int64
	dist float64
}

// frontier implements a priority queue with deterministic ordering.
// Ordering: distance → node ID.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

// Less orders by distance, then node ID as a deterministic tie-breaker so
// identical graphs and coordinates always settle nodes in the same order.
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].node < f[j].node
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[0 : n-1]
	return item
}

// shortestPath runs Dijkstra from source to target over non-negative arc
// lengths and returns the node sequence plus the summed length in meters.
// Stale frontier entries are skipped rather than decreased in place.
// ctx is checked each time a node settles; large map extracts can make this
// the longest-running call in a session.
func (g *RoadGraph) shortestPath(ctx context.Context, source, target int64) ([]int64, float64, error) {
	dist := map[int64]float64{source: 0}
	prev := make(map[int64]int64)
	settled := make(map[int64]bool)

	f := &frontier{{node: source, dist: 0}}
	heap.Init(f)

	for f.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		item := heap.Pop(f).(frontierItem)
		if settled[item.node] {
			continue
		}
		settled[item.node] = true
		if item.node == target {
			break
		}
		for _, a := range g.arcsFrom(item.node) {
			nd := item.dist + a.length
			if d, seen := dist[a.to]; !seen || nd < d {
				dist[a.to] = nd
				prev[a.to] = item.node
				heap.Push(f, frontierItem{node: a.to, dist: nd})
			}
		}
	}

	if !settled[target] {
		return nil, 0, ErrNoPath
	}

	path := []int64{target}
	for at := target; at != source; {
		at = prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}
