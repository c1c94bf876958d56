package mapdata

import (
	"math"

	"github.com/dragonruler/pathfinder/geometry"
)

// DoorType classifies whether (and how) a wall can be a door.
type DoorType int

const (
	// DoorNone is a plain, non-door wall.
	DoorNone DoorType = 0
	// DoorRegular is an ordinary door.
	DoorRegular DoorType = 1
	// DoorSecret is a secret door.
	DoorSecret DoorType = 2
)

// DoorState describes the current state of a door-type wall.
type DoorState int

const (
	// DoorClosed means the door currently blocks movement.
	DoorClosed DoorState = 0
	// DoorOpen means the door currently does not block movement.
	DoorOpen DoorState = 1
	// DoorLocked behaves like DoorClosed for admission purposes.
	DoorLocked DoorState = 2
)

// SenseType is the per-wall enumeration deciding whether the wall blocks
// movement at all. The numeric values match the host wire format.
type SenseType int

const (
	// SenseNone walls never block movement.
	SenseNone SenseType = 0
	// SenseLimited walls block movement.
	SenseLimited SenseType = 10
	// SenseNormal walls block movement.
	SenseNormal SenseType = 20
)

// Wall is a single blocking (or potentially blocking) segment in the scene.
type Wall struct {
	P1, P2 geometry.Point
	Door   DoorType
	State  DoorState
	Sense  SenseType

	// Bottom and Top bound the wall's vertical extent. Both default to the
	// infinite extent (-Inf, +Inf) when height gating is disabled or unset.
	Bottom, Top float64
}

// NewWall constructs a Wall with an unbounded vertical extent.
func NewWall(p1, p2 geometry.Point, door DoorType, state DoorState, sense SenseType) Wall {
	return Wall{
		P1: p1, P2: p2,
		Door: door, State: state, Sense: sense,
		Bottom: math.Inf(-1), Top: math.Inf(1),
	}
}

// RoundEndpoints returns a copy of w with both endpoints rounded to the
// nearest integer, the canonicalisation applied at ingest so that two walls
// sharing an endpoint hash to the same Point key.
func (w Wall) RoundEndpoints() Wall {
	w.P1 = w.P1.Rounded()
	w.P2 = w.P2.Rounded()
	return w
}

// IsDoor reports whether the wall is a door of any kind.
func (w Wall) IsDoor() bool {
	return w.Door != DoorNone
}

// IsOpen reports whether the wall is currently an open door.
func (w Wall) IsOpen() bool {
	return w.State == DoorOpen
}

// ContainsElevation reports whether z falls within [Bottom, Top].
func (w Wall) ContainsElevation(z float64) bool {
	return z >= w.Bottom && z <= w.Top
}

// Blocking reports whether this wall currently blocks movement for a token
// at the given elevation: its sense type must be non-NONE, it must not be
// an open door, and its vertical extent must contain tokenElevation.
func (w Wall) Blocking(tokenElevation float64) bool {
	if w.Sense == SenseNone {
		return false
	}
	if w.IsDoor() && w.IsOpen() {
		return false
	}
	return w.ContainsElevation(tokenElevation)
}

// Segment returns the geometry.Segment spanning the wall's endpoints.
func (w Wall) Segment() geometry.Segment {
	return geometry.NewSegment(w.P1, w.P2)
}

// CollapseHeight resets the wall's vertical extent to the unbounded
// default, used when the engine is initialised with height gating disabled.
func (w Wall) CollapseHeight() Wall {
	w.Bottom = math.Inf(-1)
	w.Top = math.Inf(1)
	return w
}
