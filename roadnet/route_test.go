package roadnet

import (
	"context"
	"errors"
	"math"
	"testing"
)

// grid builds a small connected network:
//
//	1 --100-- 2 --100-- 3
//	 \                 /
//	  -----250--------
//
// plus nodes 10 and 11 forming a separate component far to the north.
func grid() *RoadGraph {
	g := NewRoadGraph()
	g.AddNode(Node{ID: 1, Lat: 37.0000, Lon: 127.0000})
	g.AddNode(Node{ID: 2, Lat: 37.0010, Lon: 127.0000})
	g.AddNode(Node{ID: 3, Lat: 37.0020, Lon: 127.0000})
	g.AddNode(Node{ID: 10, Lat: 39.0000, Lon: 127.0000})
	g.AddNode(Node{ID: 11, Lat: 39.0010, Lon: 127.0000})
	mustArc(g, 1, 2, 100)
	mustArc(g, 2, 1, 100)
	mustArc(g, 2, 3, 100)
	mustArc(g, 3, 2, 100)
	mustArc(g, 1, 3, 250)
	mustArc(g, 3, 1, 250)
	mustArc(g, 10, 11, 120)
	mustArc(g, 11, 10, 120)
	return g
}

func mustArc(g *RoadGraph, u, v int64, length float64) {
	if err := g.AddArc(u, v, length); err != nil {
		panic(err)
	}
}

func TestComputeRoute_ShortestByLengthNotHops(t *testing.T) {
	// 1 -> 3 direct costs 250; via 2 costs 200. Weight is physical length,
	// so the two-hop path wins.
	g := grid()
	res, err := ComputeRoute(context.Background(), g,
		Coordinates{Lat: 37.0000, Lon: 127.0000},
		Coordinates{Lat: 37.0020, Lon: 127.0000})
	if err != nil {
		t.Fatalf("ComputeRoute: %v", err)
	}
	want := []int64{1, 2, 3}
	if len(res.NodeIDs) != len(want) {
		t.Fatalf("path: got %v, want %v", res.NodeIDs, want)
	}
	for i := range want {
		if res.NodeIDs[i] != want[i] {
			t.Fatalf("path: got %v, want %v", res.NodeIDs, want)
		}
	}
	if res.LengthMeters != 200 {
		t.Errorf("length: got %f, want 200", res.LengthMeters)
	}
}

func TestComputeRoute_Deterministic(t *testing.T) {
	g := grid()
	origin := Coordinates{Lat: 37.0001, Lon: 127.0001}
	dest := Coordinates{Lat: 37.0019, Lon: 127.0001}

	first, err := ComputeRoute(context.Background(), g, origin, dest)
	if err != nil {
		t.Fatalf("first ComputeRoute: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := ComputeRoute(context.Background(), g, origin, dest)
		if err != nil {
			t.Fatalf("repeat ComputeRoute: %v", err)
		}
		if again.LengthMeters != first.LengthMeters {
			t.Fatalf("length changed between runs: %f vs %f", again.LengthMeters, first.LengthMeters)
		}
		if len(again.NodeIDs) != len(first.NodeIDs) {
			t.Fatalf("path changed between runs: %v vs %v", again.NodeIDs, first.NodeIDs)
		}
		for j := range first.NodeIDs {
			if again.NodeIDs[j] != first.NodeIDs[j] {
				t.Fatalf("path changed between runs: %v vs %v", again.NodeIDs, first.NodeIDs)
			}
		}
	}
}

func TestComputeRoute_DisconnectedComponents(t *testing.T) {
	// Origin snaps into the southern component, destination into the
	// northern one; there is no connecting arc.
	g := grid()
	_, err := ComputeRoute(context.Background(), g,
		Coordinates{Lat: 37.0000, Lon: 127.0000},
		Coordinates{Lat: 39.0000, Lon: 127.0000})
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("disconnected: got %v, want ErrNoPath", err)
	}
}

func TestComputeRoute_GraphUnavailable(t *testing.T) {
	_, err := ComputeRoute(context.Background(), nil, Coordinates{}, Coordinates{})
	if !errors.Is(err, ErrGraphUnavailable) {
		t.Errorf("nil graph: got %v, want ErrGraphUnavailable", err)
	}

	_, err = ComputeRoute(context.Background(), NewRoadGraph(), Coordinates{}, Coordinates{})
	if !errors.Is(err, ErrGraphUnavailable) {
		t.Errorf("empty graph: got %v, want ErrGraphUnavailable", err)
	}
}

func TestComputeRoute_SameNearestNodeForBothEndpoints(t *testing.T) {
	// Origin and destination snapping to the same node is a valid
	// single-node route of length zero.
	g := grid()
	res, err := ComputeRoute(context.Background(), g,
		Coordinates{Lat: 37.0000, Lon: 127.0000},
		Coordinates{Lat: 37.0001, Lon: 127.0000})
	if err != nil {
		t.Fatalf("ComputeRoute: %v", err)
	}
	if len(res.NodeIDs) != 1 || res.NodeIDs[0] != 1 {
		t.Errorf("path: got %v, want [1]", res.NodeIDs)
	}
	if res.LengthMeters != 0 {
		t.Errorf("length: got %f, want 0", res.LengthMeters)
	}
}

func TestComputeRoute_CanceledContext(t *testing.T) {
	g := grid()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ComputeRoute(ctx, g,
		Coordinates{Lat: 37.0000, Lon: 127.0000},
		Coordinates{Lat: 37.0020, Lon: 127.0000})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("canceled ctx: got %v, want context.Canceled", err)
	}
}

func TestNearestNode_TieGoesToLowerID(t *testing.T) {
	// Two nodes at identical coordinates: the scan keeps the lower ID.
	g := NewRoadGraph()
	g.AddNode(Node{ID: 7, Lat: 37.5, Lon: 127.5})
	g.AddNode(Node{ID: 4, Lat: 37.5, Lon: 127.5})
	id, ok := g.NearestNode(Coordinates{Lat: 37.5, Lon: 127.5})
	if !ok {
		t.Fatal("NearestNode: no node found")
	}
	if id != 4 {
		t.Errorf("equidistant tie: got %d, want 4", id)
	}
}

func TestNearestNode_EmptyGraph(t *testing.T) {
	g := NewRoadGraph()
	if _, ok := g.NearestNode(Coordinates{}); ok {
		t.Error("NearestNode on empty graph should report not found")
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	// One degree of latitude is about 111.2 km.
	d := haversineMeters(Coordinates{Lat: 37, Lon: 127}, Coordinates{Lat: 38, Lon: 127})
	if math.Abs(d-111195) > 500 {
		t.Errorf("haversine 1 degree latitude: got %f, want ~111195", d)
	}
}

func TestAddArc_Validation(t *testing.T) {
	g := NewRoadGraph()
	g.AddNode(Node{ID: 1, Lat: 0, Lon: 0})
	g.AddNode(Node{ID: 2, Lat: 0, Lon: 1})

	if err := g.AddArc(1, 2, -5); err == nil {
		t.Error("negative length must be rejected")
	}
	if err := g.AddArc(1, 3, 10); err == nil {
		t.Error("unknown endpoint must be rejected")
	}
	if err := g.AddArc(1, 2, 0); err != nil {
		t.Errorf("zero-length arc is valid, got %v", err)
	}
}
