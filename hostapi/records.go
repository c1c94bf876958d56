package hostapi

import (
	"errors"
	"fmt"

	"github.com/dragonruler/pathfinder/geometry"
	"github.com/dragonruler/pathfinder/mapdata"
)

// ErrInvalidWallRecord is returned by DecodeWall when a door, door-state, or
// sense code falls outside the recognised wire enumeration, and by
// DecodeTerrain when a polygon record has an odd coordinate count.
var ErrInvalidWallRecord = errors.New("hostapi: invalid wall record field")

// WallRecord is the plain-data shape a host sends across the wire for one
// wall: four floats for the two endpoints, integer enum codes, and an
// optional vertical extent (nil on both fields means unbounded).
type WallRecord struct {
	C         [4]float64
	Door      int
	DoorState int
	Sense     int
	Top       *float64
	Bottom    *float64
}

// TerrainRecord is the plain-data shape for one terrain region: a shape
// discriminator, its bounding box, and the shape-specific payload (Points
// for polygon, Center+Radius for circle).
type TerrainRecord struct {
	Shape  int
	Bounds [4]float64
	Points []float64
	Center [2]float64
	Radius float64
}

// DecodeWall validates and converts a wire record into a mapdata.Wall.
// Endpoint rounding happens later, at node-generation admission, not here.
func DecodeWall(r WallRecord) (mapdata.Wall, error) {
	door := mapdata.DoorType(r.Door)
	if door != mapdata.DoorNone && door != mapdata.DoorRegular && door != mapdata.DoorSecret {
		return mapdata.Wall{}, fmt.Errorf("%w: door code %d", ErrInvalidWallRecord, r.Door)
	}
	state := mapdata.DoorState(r.DoorState)
	if state != mapdata.DoorClosed && state != mapdata.DoorOpen && state != mapdata.DoorLocked {
		return mapdata.Wall{}, fmt.Errorf("%w: door-state code %d", ErrInvalidWallRecord, r.DoorState)
	}
	sense := mapdata.SenseType(r.Sense)
	if sense != mapdata.SenseNone && sense != mapdata.SenseLimited && sense != mapdata.SenseNormal {
		return mapdata.Wall{}, fmt.Errorf("%w: sense code %d", ErrInvalidWallRecord, r.Sense)
	}

	w := mapdata.NewWall(
		geometry.NewPoint(r.C[0], r.C[1]),
		geometry.NewPoint(r.C[2], r.C[3]),
		door, state, sense,
	)
	if r.Bottom != nil {
		w.Bottom = *r.Bottom
	}
	if r.Top != nil {
		w.Top = *r.Top
	}
	return w, nil
}

// DecodeTerrain validates and converts a wire record into a mapdata.Terrain.
// An unrecognised shape code is the one fatal ingest condition named in the
// engine's error-handling design; it is surfaced here as
// mapdata.ErrUnsupportedTerrainShape, so a host can reject bad scene data
// before ever constructing an engine; Pathfinder.Initialize checks the same
// condition again for terrain values built without this decoder.
func DecodeTerrain(r TerrainRecord) (mapdata.Terrain, error) {
	bounds := geometry.Rect{Left: r.Bounds[0], Top: r.Bounds[1], Right: r.Bounds[2], Bottom: r.Bounds[3]}

	switch mapdata.TerrainShapeKind(r.Shape) {
	case mapdata.TerrainPolygon:
		if len(r.Points)%2 != 0 {
			return mapdata.Terrain{}, fmt.Errorf("%w: odd coordinate count %d in polygon terrain", ErrInvalidWallRecord, len(r.Points))
		}
		points := make([]geometry.Point, 0, len(r.Points)/2)
		for i := 0; i < len(r.Points); i += 2 {
			points = append(points, geometry.NewPoint(r.Points[i], r.Points[i+1]))
		}
		return mapdata.NewPolygonTerrain(points, bounds), nil
	case mapdata.TerrainCircle:
		circle := geometry.Circle{Center: geometry.NewPoint(r.Center[0], r.Center[1]), Radius: r.Radius}
		return mapdata.NewCircleTerrain(circle, bounds), nil
	default:
		return mapdata.Terrain{}, fmt.Errorf("%w: shape code %d", mapdata.ErrUnsupportedTerrainShape, r.Shape)
	}
}
