package nodegen

import (
	"fmt"
	"math"
	"sort"

	"github.com/dragonruler/pathfinder/geometry"
	"github.com/dragonruler/pathfinder/graph"
	"github.com/dragonruler/pathfinder/mapdata"
)

// syntheticShrinkFactor scales the synthetic corner-blocking segment so it
// stops just short of the generated waypoint, leaving the waypoint itself
// reachable while still preventing other candidate edges from cutting the
// corner on the obstacle side.
const syntheticShrinkFactor = 0.99

// cornerSegment is a minimal (p1, p2) pair used to feed the shared
// corner-offset routine from either wall or polygon-terrain edges.
type cornerSegment struct {
	P1, P2 geometry.Point
}

// GenerateFromWalls builds the regular nodes implied by a wall layout's
// corners. A wall's door state plays no part in admission: node geometry is
// fixed for the lifetime of a Pathfinder, so a door's corners are generated
// from its position regardless of whether it is open or closed at
// Initialize time, letting a later SetDoorState toggle the door without
// requiring the node set to be rebuilt. Only a wall with SenseNone, or one
// outside the token's elevation band, is excluded outright.
//
// Returns the generated nodes, the synthetic corner-blocking segments that
// must be added to the persistent wall set, and the admitted walls
// (endpoints rounded) for the caller to partition into WallStorage.
func GenerateFromWalls(walls []mapdata.Wall, token mapdata.TokenProfile) (nodes []*graph.Node, synthetic []geometry.Segment, admitted []mapdata.Wall) {
	distance := token.DistanceFromWalls()

	admitted = make([]mapdata.Wall, 0, len(walls))
	segs := make([]cornerSegment, 0, len(walls))
	for _, w := range walls {
		if token.EnableHeight {
			// Keep the wall's own extent.
		} else {
			w = w.CollapseHeight()
		}
		if w.Sense == mapdata.SenseNone {
			continue
		}
		if !w.ContainsElevation(token.Elevation) {
			continue
		}
		w = w.RoundEndpoints()
		if w.P1.Exact(w.P2) {
			// Zero-length wall contributes no endpoints to node generation.
			continue
		}
		admitted = append(admitted, w)
		segs = append(segs, cornerSegment{P1: w.P1, P2: w.P2})
	}

	cornerNodes, cornerSynthetic := generateCornerNodes(segs, distance)
	return cornerNodes, cornerSynthetic, admitted
}

// GenerateFromTerrain builds the regular nodes for a set of difficult
// terrain regions: polygon terrain reuses the corner-offset routine over
// its edge sequence, while circular terrain emits nodes at a fixed angular
// step around its circumference, each offset radially outward.
func GenerateFromTerrain(terrains []mapdata.Terrain, token mapdata.TokenProfile) (nodes []*graph.Node, synthetic []geometry.Segment) {
	distance := token.DistanceFromWalls()

	for _, t := range terrains {
		switch t.Kind {
		case mapdata.TerrainPolygon:
			segs := make([]cornerSegment, 0, len(t.Polygon))
			for _, s := range t.Segments() {
				segs = append(segs, cornerSegment{P1: s.P1, P2: s.P2})
			}
			polyNodes, polySynthetic := generateCornerNodes(segs, distance)
			nodes = append(nodes, polyNodes...)
			synthetic = append(synthetic, polySynthetic...)
		case mapdata.TerrainCircle:
			for _, angle := range t.CircumferenceNodeAngles(token.Size) {
				r := t.Circle.Radius + distance
				p := geometry.NewPoint(
					t.Circle.Center.X+math.Cos(angle)*r,
					t.Circle.Center.Y+math.Sin(angle)*r,
				)
				nodes = append(nodes, graph.NewNode(p))
			}
		default:
			panic(fmt.Sprintf("nodegen: unreachable terrain shape %d reached node generation", t.Kind))
		}
	}
	return nodes, synthetic
}

// generateCornerNodes implements the shared corner-offset rule of spec §4.4:
// for every endpoint shared by one or more admitted segments, the incident
// segments' outgoing angles are normalised into [0, 2*Pi) and sorted; for
// every circularly-adjacent angle pair (alpha, beta) with gap = beta-alpha:
//
//	gap <= Pi:        no node (exterior of the corner isn't traversable
//	                  without crossing a wall)
//	Pi < gap <= 1.5*Pi: two flank nodes, at alpha+Pi/2 and beta-Pi/2
//	gap > 1.5*Pi:     the two flank nodes plus a bisector node at alpha+gap/2
//
// A short synthetic wall segment is appended from the corner point towards
// each emitted node (shrunk by syntheticShrinkFactor), so that later edge
// discovery cannot produce an edge that cuts across the obstacle side of
// the corner.
func generateCornerNodes(segs []cornerSegment, distanceFromWalls float64) (nodes []*graph.Node, synthetic []geometry.Segment) {
	endpoints := make(map[geometry.Point][]float64)
	order := make([]geometry.Point, 0)

	for _, seg := range segs {
		xDiff := seg.P2.X - seg.P1.X
		yDiff := seg.P2.Y - seg.P1.Y
		p1Angle := geometry.NormalizeAngle(math.Atan2(yDiff, xDiff))
		p2Angle := geometry.NormalizeAngle(p1Angle + math.Pi)

		for _, pa := range [2]struct {
			point geometry.Point
			angle float64
		}{{seg.P1, p1Angle}, {seg.P2, p2Angle}} {
			if _, seen := endpoints[pa.point]; !seen {
				order = append(order, pa.point)
			}
			endpoints[pa.point] = append(endpoints[pa.point], pa.angle)
		}
	}

	for _, point := range order {
		angles := endpoints[point]
		if len(angles) == 0 {
			panic("nodegen: empty angle list at a wall endpoint")
		}
		sort.Float64s(angles)

		emit := func(alpha, beta float64) {
			gap := beta - alpha
			if gap <= math.Pi {
				return
			}
			flank1 := alpha + math.Pi/2
			flank2 := beta - math.Pi/2
			if gap <= 1.5*math.Pi {
				n1, s1 := cornerNode(point, flank1, distanceFromWalls)
				n2, s2 := cornerNode(point, flank2, distanceFromWalls)
				nodes = append(nodes, n1, n2)
				synthetic = append(synthetic, s1, s2)
				return
			}
			bisector := alpha + gap/2
			nb, sb := cornerNode(point, bisector, distanceFromWalls)
			n1, s1 := cornerNode(point, flank1, distanceFromWalls)
			n2, s2 := cornerNode(point, flank2, distanceFromWalls)
			nodes = append(nodes, nb, n1, n2)
			synthetic = append(synthetic, sb, s1, s2)
		}

		for i := 1; i < len(angles); i++ {
			if angles[i-1] == angles[i] {
				continue
			}
			emit(angles[i-1], angles[i])
		}
		// Wrap-around pair: last angle to first angle + 2*Pi.
		emit(angles[len(angles)-1], angles[0]+2*math.Pi)
	}

	return nodes, synthetic
}

// cornerNode builds the waypoint at distanceFromWalls along angle from
// corner, plus the shrunk synthetic wall segment guarding that corner.
func cornerNode(corner geometry.Point, angle, distanceFromWalls float64) (*graph.Node, geometry.Segment) {
	offsetX := math.Cos(angle) * distanceFromWalls
	offsetY := math.Sin(angle) * distanceFromWalls
	waypoint := geometry.NewPoint(corner.X+offsetX, corner.Y+offsetY)
	shrunk := geometry.NewPoint(corner.X+offsetX*syntheticShrinkFactor, corner.Y+offsetY*syntheticShrinkFactor)
	return graph.NewNode(waypoint), geometry.NewSegment(corner, shrunk)
}
