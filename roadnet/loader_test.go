package roadnet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGraphFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRoadGraph_Valid(t *testing.T) {
	path := writeGraphFile(t, `{
		"directed": true,
		"nodes": [
			{"id": 1, "lat": 37.0, "lon": 127.0},
			{"id": 2, "lat": 37.001, "lon": 127.0}
		],
		"edges": [
			{"from": 1, "to": 2, "length": 120.5}
		]
	}`)

	g, err := LoadRoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumNodes())
	assert.Equal(t, 1, g.NumArcs())

	n, ok := g.Node(2)
	require.True(t, ok)
	assert.Equal(t, 37.001, n.Lat)
}

func TestLoadRoadGraph_UndirectedMaterializesBothArcs(t *testing.T) {
	path := writeGraphFile(t, `{
		"nodes": [
			{"id": 1, "lat": 37.0, "lon": 127.0},
			{"id": 2, "lat": 37.001, "lon": 127.0}
		],
		"edges": [
			{"from": 1, "to": 2, "length": 100}
		]
	}`)

	g, err := LoadRoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumArcs())

	// Route is traversable in both directions.
	fwd, err := ComputeRoute(context.Background(), g,
		Coordinates{Lat: 37.0, Lon: 127.0}, Coordinates{Lat: 37.001, Lon: 127.0})
	require.NoError(t, err)
	rev, err := ComputeRoute(context.Background(), g,
		Coordinates{Lat: 37.001, Lon: 127.0}, Coordinates{Lat: 37.0, Lon: 127.0})
	require.NoError(t, err)
	assert.Equal(t, fwd.LengthMeters, rev.LengthMeters)
}

func TestLoadRoadGraph_NegativeLengthRejected(t *testing.T) {
	path := writeGraphFile(t, `{
		"nodes": [
			{"id": 1, "lat": 37.0, "lon": 127.0},
			{"id": 2, "lat": 37.001, "lon": 127.0}
		],
		"edges": [
			{"from": 1, "to": 2, "length": -10}
		]
	}`)

	_, err := LoadRoadGraph(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative length")
}

func TestLoadRoadGraph_UnknownEndpointRejected(t *testing.T) {
	path := writeGraphFile(t, `{
		"nodes": [{"id": 1, "lat": 37.0, "lon": 127.0}],
		"edges": [{"from": 1, "to": 9, "length": 10}]
	}`)

	_, err := LoadRoadGraph(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown node")
}

func TestLoadRoadGraph_MalformedJSON(t *testing.T) {
	path := writeGraphFile(t, `{"nodes": [`)
	_, err := LoadRoadGraph(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing road graph")
}

func TestLoadRoadGraph_MissingFile(t *testing.T) {
	_, err := LoadRoadGraph(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading road graph")
}
