package nodegen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dragonruler/pathfinder/geometry"
	"github.com/dragonruler/pathfinder/mapdata"
	"github.com/dragonruler/pathfinder/nodegen"
)

type NodeGenSuite struct {
	suite.Suite
}

func TestNodeGenSuite(t *testing.T) {
	suite.Run(t, new(NodeGenSuite))
}

func (s *NodeGenSuite) TestNoWallsProducesNoNodes() {
	require := require.New(s.T())
	nodes, synthetic, admitted := nodegen.GenerateFromWalls(nil, mapdata.TokenProfile{Size: 10})
	require.Empty(nodes)
	require.Empty(synthetic)
	require.Empty(admitted)
}

func (s *NodeGenSuite) TestSenseNoneWallIsExcluded() {
	require := require.New(s.T())
	walls := []mapdata.Wall{
		mapdata.NewWall(geometry.NewPoint(0, 0), geometry.NewPoint(10, 0), mapdata.DoorNone, mapdata.DoorClosed, mapdata.SenseNone),
	}
	nodes, _, admitted := nodegen.GenerateFromWalls(walls, mapdata.TokenProfile{Size: 10})
	require.Empty(nodes)
	require.Empty(admitted)
}

func (s *NodeGenSuite) TestElevationGateExcludesWall() {
	require := require.New(s.T())
	w := mapdata.NewWall(geometry.NewPoint(0, 0), geometry.NewPoint(10, 0), mapdata.DoorNone, mapdata.DoorClosed, mapdata.SenseNormal)
	w.Bottom, w.Top = 0, 10
	token := mapdata.TokenProfile{Size: 10, Elevation: 20, EnableHeight: true}
	nodes, _, admitted := nodegen.GenerateFromWalls([]mapdata.Wall{w}, token)
	require.Empty(nodes)
	require.Empty(admitted, "wall outside token elevation must not be admitted")
}

func (s *NodeGenSuite) TestEnableHeightFalseCollapsesExtent() {
	require := require.New(s.T())
	w := mapdata.NewWall(geometry.NewPoint(0, 0), geometry.NewPoint(10, 0), mapdata.DoorNone, mapdata.DoorClosed, mapdata.SenseNormal)
	w.Bottom, w.Top = 0, 10
	token := mapdata.TokenProfile{Size: 10, Elevation: 9999, EnableHeight: false}
	_, _, admitted := nodegen.GenerateFromWalls([]mapdata.Wall{w}, token)
	require.Len(admitted, 1, "height gating disabled means elevation always matches")
}

func (s *NodeGenSuite) TestZeroLengthWallContributesNoEndpoints() {
	require := require.New(s.T())
	w := mapdata.NewWall(geometry.NewPoint(5, 5), geometry.NewPoint(5, 5), mapdata.DoorNone, mapdata.DoorClosed, mapdata.SenseNormal)
	nodes, _, admitted := nodegen.GenerateFromWalls([]mapdata.Wall{w}, mapdata.TokenProfile{Size: 10})
	require.Empty(nodes)
	require.Empty(admitted)
}

func (s *NodeGenSuite) TestCornerRoutingProducesFlankAndBisectorNodes() {
	require := require.New(s.T())

	// Two walls meeting at (50,0), forming a 90-degree interior corner (gap
	// of exactly 1.5*Pi on the exterior side): expect 2 nodes at that corner.
	walls := []mapdata.Wall{
		mapdata.NewWall(geometry.NewPoint(50, -100), geometry.NewPoint(50, 0), mapdata.DoorNone, mapdata.DoorClosed, mapdata.SenseNormal),
		mapdata.NewWall(geometry.NewPoint(50, 0), geometry.NewPoint(150, 0), mapdata.DoorNone, mapdata.DoorClosed, mapdata.SenseNormal),
	}
	token := mapdata.TokenProfile{Size: 20}
	nodes, synthetic, admitted := nodegen.GenerateFromWalls(walls, token)

	require.Len(admitted, 2)
	// Corner at (50,0): the two walls' angles are exactly Pi/2 apart on one
	// side of the circle and 3*Pi/2 (== 1.5*Pi) on the other: the 1.5*Pi gap
	// emits the two flank nodes (boundary case, not the extra bisector), and
	// the Pi/2 gap emits none. The two dangling endpoints (50,-100) and
	// (150,0) each have a single incident angle, producing a 2*Pi wrap gap
	// -> 3 nodes each.
	require.Len(nodes, 8)
	require.Len(synthetic, 8)

	foundCornerNeighborhood := false
	for _, n := range nodes {
		if n.Point.DistanceTo(geometry.NewPoint(50, 0)) <= 10.0+1e-6 {
			foundCornerNeighborhood = true
		}
	}
	require.True(foundCornerNeighborhood, "expected a node offset near the (50,0) corner")
}

func (s *NodeGenSuite) TestGapAtMostPiProducesNoNode() {
	require := require.New(s.T())

	// A straight wall (two collinear segments) has a 180-degree angle on
	// each side at the shared point: gap == Pi on both sides, so no node
	// should be generated there.
	walls := []mapdata.Wall{
		mapdata.NewWall(geometry.NewPoint(0, 0), geometry.NewPoint(50, 0), mapdata.DoorNone, mapdata.DoorClosed, mapdata.SenseNormal),
		mapdata.NewWall(geometry.NewPoint(50, 0), geometry.NewPoint(100, 0), mapdata.DoorNone, mapdata.DoorClosed, mapdata.SenseNormal),
	}
	token := mapdata.TokenProfile{Size: 10}
	nodes, _, _ := nodegen.GenerateFromWalls(walls, token)

	for _, n := range nodes {
		require.Greater(n.Point.DistanceTo(geometry.NewPoint(50, 0)), 0.01,
			"a straight 180-degree joint must not emit a node at the joint")
	}
}

func (s *NodeGenSuite) TestCircleTerrainNodeCountAndOffset() {
	require := require.New(s.T())

	circle := geometry.Circle{Center: geometry.NewPoint(0, 0), Radius: 100}
	terrain := mapdata.NewCircleTerrain(circle, geometry.Rect{Left: -100, Top: -100, Right: 100, Bottom: 100})
	token := mapdata.TokenProfile{Size: 10}

	nodes, synthetic := nodegen.GenerateFromTerrain([]mapdata.Terrain{terrain}, token)
	require.Empty(synthetic, "circular terrain does not add synthetic corner walls")
	require.NotEmpty(nodes)

	for _, n := range nodes {
		require.InDelta(105.0, n.Point.DistanceTo(circle.Center), 1e-6)
	}
}

func (s *NodeGenSuite) TestPolygonTerrainUsesCornerRule() {
	require := require.New(s.T())

	poly := mapdata.NewPolygonTerrain([]geometry.Point{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100},
	}, geometry.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100})
	token := mapdata.TokenProfile{Size: 10}

	nodes, synthetic := nodegen.GenerateFromTerrain([]mapdata.Terrain{poly}, token)
	require.NotEmpty(nodes)
	require.Len(synthetic, len(nodes))
}

func (s *NodeGenSuite) TestDoorStateDoesNotAffectCornerGeometry() {
	require := require.New(s.T())

	openWalls := []mapdata.Wall{
		mapdata.NewWall(geometry.NewPoint(50, -100), geometry.NewPoint(50, 100), mapdata.DoorRegular, mapdata.DoorOpen, mapdata.SenseNormal),
	}
	closedWalls := []mapdata.Wall{
		mapdata.NewWall(geometry.NewPoint(50, -100), geometry.NewPoint(50, 100), mapdata.DoorRegular, mapdata.DoorClosed, mapdata.SenseNormal),
	}
	token := mapdata.TokenProfile{Size: 10}

	openNodes, _, admitted := nodegen.GenerateFromWalls(openWalls, token)
	require.Len(admitted, 1, "doors are admitted for WallStorage partitioning regardless of state")
	require.NotEmpty(openNodes, "node geometry must not depend on the door's state at Initialize time")

	closedNodes, _, _ := nodegen.GenerateFromWalls(closedWalls, token)
	require.Equal(len(closedNodes), len(openNodes), "an open door and a closed door at the same position generate identical corner geometry")
}

func (s *NodeGenSuite) TestNormalizeAngleUsedConsistently() {
	require := require.New(s.T())
	// Sanity check the shared epsilon/angle helper is exercised identically
	// to geometry.NormalizeAngle.
	require.InDelta(0.0, geometry.NormalizeAngle(4*math.Pi), 1e-9)
}
