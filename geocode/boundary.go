package geocode

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/golang/geo/s2"
)

// Boundary is a single geographic polygon used only to validate synthetic
// fallback points. Absence of a boundary degrades gracefully: no
// validation, no rejection.
type Boundary struct {
	loop *s2.Loop
}

// NewBoundary builds a boundary from a ring of [lng, lat] vertices. A
// closing vertex equal to the first is tolerated.
func NewBoundary(ring [][2]float64) (*Boundary, error) {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil, errors.New("boundary ring needs at least 3 vertices")
	}
	pts := make([]s2.Point, 0, len(ring))
	for _, v := range ring {
		pts = append(pts, s2.PointFromLatLng(s2.LatLngFromDegrees(v[1], v[0])))
	}
	loop := s2.LoopFromPoints(pts)
	// Interior is the smaller region regardless of the ring's winding.
	loop.Normalize()
	return &Boundary{loop: loop}, nil
}

// Contains reports whether the point lies inside the boundary.
func (b *Boundary) Contains(lat, lng float64) bool {
	return b.loop.ContainsPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng)))
}

type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// LoadBoundary reads a boundary polygon from a JSON file. Accepted shapes:
// a GeoJSON Polygon geometry (outer ring only) or a bare [[lng,lat],...]
// ring.
func LoadBoundary(path string) (*Boundary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var geom geoJSONGeometry
	if err := json.Unmarshal(data, &geom); err == nil && geom.Type == "Polygon" {
		var rings [][][2]float64
		if err := json.Unmarshal(geom.Coordinates, &rings); err != nil {
			return nil, err
		}
		if len(rings) == 0 {
			return nil, errors.New("polygon has no rings")
		}
		return NewBoundary(rings[0])
	}
	var ring [][2]float64
	if err := json.Unmarshal(data, &ring); err != nil {
		return nil, err
	}
	return NewBoundary(ring)
}
