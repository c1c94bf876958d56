package hostapi

import (
	"log/slog"
	"sync"

	"github.com/dragonruler/pathfinder/geometry"
	"github.com/dragonruler/pathfinder/graph"
	"github.com/dragonruler/pathfinder/mapdata"
	"github.com/dragonruler/pathfinder/pathfinder"
)

// Engine wraps a single *pathfinder.Pathfinder instance with the
// single-instance-per-scene concurrency discipline the bare pathfinder
// package does not enforce: FindPath on one instance is not safe to call
// concurrently, so Engine serialises access with a mutex rather than make
// every caller remember that rule.
type Engine struct {
	mu  sync.Mutex
	pf  *pathfinder.Pathfinder
	log *slog.Logger
}

// New decodes wall and terrain wire records and builds a ready Engine.
// Rejects with the same error Initialize would return for unrecognised
// terrain shape codes or malformed records.
func New(walls []WallRecord, terrains []TerrainRecord, token mapdata.TokenProfile, oracle graph.TerrainDistanceFunc, opts ...pathfinder.Option) (*Engine, error) {
	decodedWalls := make([]mapdata.Wall, 0, len(walls))
	for _, r := range walls {
		w, err := DecodeWall(r)
		if err != nil {
			return nil, err
		}
		decodedWalls = append(decodedWalls, w)
	}

	decodedTerrains := make([]mapdata.Terrain, 0, len(terrains))
	for _, r := range terrains {
		t, err := DecodeTerrain(r)
		if err != nil {
			return nil, err
		}
		decodedTerrains = append(decodedTerrains, t)
	}

	pf, err := pathfinder.Initialize(decodedWalls, decodedTerrains, token, oracle, opts...)
	if err != nil {
		return nil, err
	}

	log := slog.Default().With("component", "hostapi.Engine")
	log.Info("engine initialised", "walls", len(decodedWalls), "terrains", len(decodedTerrains))

	return &Engine{pf: pf, log: log}, nil
}

// FindPath serialises access to the underlying Pathfinder and forwards the query.
func (e *Engine) FindPath(from, to geometry.Point) ([]geometry.Point, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	path, found := e.pf.FindPath(from, to)
	e.log.Debug("find_path", "from", from, "to", to, "found", found, "hops", len(path))
	return path, found
}

// SetDoorState forwards a door toggle to the underlying Pathfinder under lock.
func (e *Engine) SetDoorState(index int, state mapdata.DoorState) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pf.SetDoorState(index, state)
}

// Close releases the underlying Pathfinder.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pf.Close()
	e.log.Info("engine closed")
}
