package mapdata

// TokenProfile describes the moving token's size (diameter) and elevation,
// and whether vertical-extent gating is active at all.
type TokenProfile struct {
	Size         float64
	Elevation    float64
	EnableHeight bool
}

// DistanceFromWalls is the corner-offset distance a generated waypoint is
// displaced from a wall corner: half the token's size.
func (t TokenProfile) DistanceFromWalls() float64 {
	return t.Size / 2
}
