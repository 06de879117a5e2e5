package roadnet

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// graphFile is the JSON exchange format handed over by the graph supplier.
// "directed" defaults to false: drive networks exported as undirected edge
// lists get both arcs materialized.
type graphFile struct {
	Directed bool       `json:"directed"`
	Nodes    []Node     `json:"nodes"`
	Edges    []edgeSpec `json:"edges"`
}

type edgeSpec struct {
	From   int64   `json:"from"`
	To     int64   `json:"to"`
	Length float64 `json:"length"`
}

// LoadRoadGraph reads and parses a JSON road-graph file.
func LoadRoadGraph(path string) (*RoadGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading road graph: %w", err)
	}
	var file graphFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing road graph: %w", err)
	}

	g := NewRoadGraph()
	for _, n := range file.Nodes {
		g.AddNode(n)
	}
	for _, e := range file.Edges {
		if err := g.AddArc(e.From, e.To, e.Length); err != nil {
			return nil, fmt.Errorf("road graph %s: %w", path, err)
		}
		if !file.Directed {
			if err := g.AddArc(e.To, e.From, e.Length); err != nil {
				return nil, fmt.Errorf("road graph %s: %w", path, err)
			}
		}
	}

	logrus.Infof("loaded road graph %s: %d nodes, %d arcs", path, g.NumNodes(), g.NumArcs())
	return g, nil
}
