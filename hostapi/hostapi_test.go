package hostapi_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dragonruler/pathfinder/geometry"
	"github.com/dragonruler/pathfinder/hostapi"
	"github.com/dragonruler/pathfinder/mapdata"
)

type HostapiSuite struct {
	suite.Suite
}

func TestHostapiSuite(t *testing.T) {
	suite.Run(t, new(HostapiSuite))
}

func (s *HostapiSuite) TestContentHashIsStableAndDistinct() {
	a := hostapi.ContentHash("scene-v1")
	b := hostapi.ContentHash("scene-v1")
	c := hostapi.ContentHash("scene-v2")

	s.Require().Equal(a, b)
	s.Require().NotEqual(a, c)
	s.Require().Len(a, 40) // hex-encoded SHA-1 is 20 bytes
}

func (s *HostapiSuite) TestDecodeWallRoundTrips() {
	top, bottom := 10.0, 0.0
	r := hostapi.WallRecord{
		C:         [4]float64{50, -5, 50, 5},
		Door:      int(mapdata.DoorRegular),
		DoorState: int(mapdata.DoorClosed),
		Sense:     int(mapdata.SenseNormal),
		Top:       &top,
		Bottom:    &bottom,
	}
	w, err := hostapi.DecodeWall(r)
	s.Require().NoError(err)
	s.Require().Equal(geometry.NewPoint(50, -5), w.P1)
	s.Require().Equal(geometry.NewPoint(50, 5), w.P2)
	s.Require().True(w.IsDoor())
	s.Require().Equal(0.0, w.Bottom)
	s.Require().Equal(10.0, w.Top)
}

func (s *HostapiSuite) TestDecodeWallRejectsBadSenseCode() {
	r := hostapi.WallRecord{C: [4]float64{0, 0, 1, 1}, Sense: 7}
	_, err := hostapi.DecodeWall(r)
	s.Require().ErrorIs(err, hostapi.ErrInvalidWallRecord)
}

func (s *HostapiSuite) TestDecodeTerrainPolygon() {
	r := hostapi.TerrainRecord{
		Shape:  int(mapdata.TerrainPolygon),
		Bounds: [4]float64{0, 0, 10, 10},
		Points: []float64{0, 0, 10, 0, 10, 10, 0, 10},
	}
	t, err := hostapi.DecodeTerrain(r)
	s.Require().NoError(err)
	s.Require().Equal(mapdata.TerrainPolygon, t.Kind)
	s.Require().Len(t.Polygon, 4)
}

func (s *HostapiSuite) TestDecodeTerrainRejectsUnknownShape() {
	r := hostapi.TerrainRecord{Shape: 99}
	_, err := hostapi.DecodeTerrain(r)
	s.Require().ErrorIs(err, mapdata.ErrUnsupportedTerrainShape)
}

func (s *HostapiSuite) TestEngineFindPath() {
	e, err := hostapi.New(nil, nil, mapdata.TokenProfile{Size: 10}, nil)
	s.Require().NoError(err)
	defer e.Close()

	from := geometry.NewPoint(0, 0)
	to := geometry.NewPoint(100, 0)
	path, found := e.FindPath(from, to)

	s.Require().True(found)
	s.Require().Equal([]geometry.Point{to, from}, path)
}

func (s *HostapiSuite) TestEngineRejectsInvalidWallRecord() {
	r := hostapi.WallRecord{C: [4]float64{0, 0, 1, 1}, Door: 99}
	_, err := hostapi.New([]hostapi.WallRecord{r}, nil, mapdata.TokenProfile{Size: 10}, nil)
	require.ErrorIs(s.T(), err, hostapi.ErrInvalidWallRecord)
}
