package roadnet

import "math"

const earthRadiusMeters = 6371000.0

// haversineMeters returns the great-circle distance between two coordinates.
func haversineMeters(a, b Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// NearestNode returns the ID of the graph node closest to c by great-circle
// distance. The scan runs over node IDs in ascending order and keeps the
// first of any equidistant pair, so identical inputs always resolve to the
// same node. Returns false only when the graph has no nodes.
func (g *RoadGraph) NearestNode(c Coordinates) (int64, bool) {
	best := int64(0)
	bestDist := math.Inf(1)
	found := false
	for _, id := range g.nodeIDs() {
		n := g.nodes[id]
		d := haversineMeters(c, Coordinates{Lat: n.Lat, Lon: n.Lon})
		if d < bestDist {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}
