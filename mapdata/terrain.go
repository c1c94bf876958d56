package mapdata

import (
	"errors"
	"math"

	"github.com/dragonruler/pathfinder/geometry"
)

// ErrUnsupportedTerrainShape is the one fatal ingest error this engine
// raises: an unrecognised terrain shape code must not be silently dropped,
// since doing so would change observable paths.
var ErrUnsupportedTerrainShape = errors.New("mapdata: unsupported terrain shape code")

// TerrainShapeKind is the terrain shape discriminator. Values match the
// host wire format.
type TerrainShapeKind int

const (
	// TerrainPolygon describes terrain as an ordered sequence of points.
	TerrainPolygon TerrainShapeKind = 0
	// TerrainCircle describes terrain as a center and radius.
	TerrainCircle TerrainShapeKind = 2
)

// Terrain is a difficult-terrain region: a shape (polygon or circle) plus
// the axis-aligned bounding rectangle that must contain it.
type Terrain struct {
	Kind    TerrainShapeKind
	Bounds  geometry.Rect
	Polygon []geometry.Point // ordered vertices, Kind == TerrainPolygon
	Circle  geometry.Circle  // Kind == TerrainCircle
}

// NewPolygonTerrain constructs a polygon Terrain from an ordered point list
// and its bounding rectangle.
func NewPolygonTerrain(points []geometry.Point, bounds geometry.Rect) Terrain {
	return Terrain{Kind: TerrainPolygon, Bounds: bounds, Polygon: points}
}

// NewCircleTerrain constructs a circular Terrain and its bounding rectangle.
func NewCircleTerrain(c geometry.Circle, bounds geometry.Rect) Terrain {
	return Terrain{Kind: TerrainCircle, Bounds: bounds, Circle: c}
}

// BoundsIntersectsSegment reports whether the terrain's bounding rectangle
// intersects s — this is the gate deciding whether an edge's cost should be
// obtained from the external distance oracle instead of Euclidean distance.
func (t Terrain) BoundsIntersectsSegment(s geometry.Segment) bool {
	return t.Bounds.IntersectsSegment(s)
}

// Segments returns the polygon's edge sequence (empty for circular terrain).
func (t Terrain) Segments() []geometry.Segment {
	if t.Kind != TerrainPolygon || len(t.Polygon) < 2 {
		return nil
	}
	segs := make([]geometry.Segment, 0, len(t.Polygon))
	for i := 0; i < len(t.Polygon); i++ {
		p1 := t.Polygon[i]
		p2 := t.Polygon[(i+1)%len(t.Polygon)]
		segs = append(segs, geometry.NewSegment(p1, p2))
	}
	return segs
}

// CircumferenceNodeAngles returns the angles, starting at 0 and stepping by
// asin((tokenSize/2) / radius), at which to generate waypoint nodes around
// a circular terrain's circumference. Returns nil for non-circle terrain or
// a radius too small to support the token.
func (t Terrain) CircumferenceNodeAngles(tokenSize float64) []float64 {
	if t.Kind != TerrainCircle || t.Circle.Radius <= 0 {
		return nil
	}
	ratio := (tokenSize / 2) / t.Circle.Radius
	if ratio > 1 {
		return nil
	}
	step := math.Asin(ratio)
	if step <= 0 {
		return nil
	}
	var angles []float64
	for a := 0.0; a < 2*math.Pi; a += step {
		angles = append(angles, a)
	}
	return angles
}
