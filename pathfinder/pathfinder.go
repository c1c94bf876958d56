package pathfinder

import (
	"container/heap"
	"fmt"

	"github.com/dragonruler/pathfinder/geometry"
	"github.com/dragonruler/pathfinder/graph"
	"github.com/dragonruler/pathfinder/idset"
	"github.com/dragonruler/pathfinder/mapdata"
	"github.com/dragonruler/pathfinder/nodegen"
)

// Pathfinder owns one scene snapshot's visibility graph: the regular nodes
// built from wall and terrain geometry at Initialize, and the partitioned
// wall store used for lazy edge discovery. It is single-threaded and
// synchronous; concurrent FindPath calls on one instance are not supported
// (see hostapi.Engine for a mutex-guarded wrapper).
type Pathfinder struct {
	nodes    *graph.NodeStorage
	walls    *graph.WallStorage
	terrains []mapdata.Terrain
	bounds   []geometry.Rect
	token    mapdata.TokenProfile
	oracle   graph.TerrainDistanceFunc
	tunables Tunables

	// admittedWalls holds every wall that survived ingest admission, in a
	// fixed backing array: door-type entries are keyed into walls by the
	// address of their slice element, giving SetDoorState a stable handle
	// without requiring the host to track its own identifiers.
	admittedWalls []mapdata.Wall
}

// Initialize builds the visibility-graph node set from wall and terrain
// geometry. terrains carrying an unrecognised shape code make this return
// mapdata.ErrUnsupportedTerrainShape; this is the only fatal ingest
// condition. hostapi.DecodeTerrain surfaces the same sentinel earlier, at
// wire-record decode time, for hosts that decode before constructing an
// engine; pathfinder re-checks here too since Initialize also accepts
// already-decoded mapdata.Terrain values that never passed through hostapi.
func Initialize(walls []mapdata.Wall, terrains []mapdata.Terrain, token mapdata.TokenProfile, oracle graph.TerrainDistanceFunc, opts ...Option) (*Pathfinder, error) {
	for _, t := range terrains {
		if t.Kind != mapdata.TerrainPolygon && t.Kind != mapdata.TerrainCircle {
			return nil, fmt.Errorf("%w: code %d", mapdata.ErrUnsupportedTerrainShape, t.Kind)
		}
	}

	tunables := DefaultTunables()
	for _, opt := range opts {
		opt(&tunables)
	}

	wallNodes, wallSynthetic, admittedWalls := nodegen.GenerateFromWalls(walls, token)
	terrainNodes, terrainSynthetic := nodegen.GenerateFromTerrain(terrains, token)

	nodeStorage := graph.NewNodeStorage()
	for _, n := range wallNodes {
		nodeStorage.Push(n)
	}
	for _, n := range terrainNodes {
		nodeStorage.Push(n)
	}

	wallStorage := graph.NewWallStorage()
	for _, seg := range wallSynthetic {
		wallStorage.AddPersistent(seg)
	}
	for _, seg := range terrainSynthetic {
		wallStorage.AddPersistent(seg)
	}

	pf := &Pathfinder{
		nodes:         nodeStorage,
		walls:         wallStorage,
		terrains:      terrains,
		token:         token,
		oracle:        oracle,
		tunables:      tunables,
		admittedWalls: admittedWalls,
	}

	for i := range pf.admittedWalls {
		w := &pf.admittedWalls[i]
		seg := w.Segment()
		if w.IsDoor() {
			active := !w.IsOpen() // closed/locked doors currently block
			wallStorage.AddDynamic(w, seg, active)
		} else {
			wallStorage.AddPersistent(seg)
		}
	}

	pf.bounds = make([]geometry.Rect, 0, len(terrains))
	for _, t := range terrains {
		pf.bounds = append(pf.bounds, t.Bounds)
	}

	return pf, nil
}

// DoorCount returns the number of door-type walls admitted at Initialize.
func (pf *Pathfinder) DoorCount() int {
	count := 0
	for _, w := range pf.admittedWalls {
		if w.IsDoor() {
			count++
		}
	}
	return count
}

// SetDoorState updates the state of the index-th admitted wall (as ordered
// during Initialize) and invalidates every regular node's dynamic edges, so
// the next FindPath call recomputes visibility through that door without
// rebuilding the persistent subgraph. Returns false if index does not refer
// to a door-type wall.
func (pf *Pathfinder) SetDoorState(index int, state mapdata.DoorState) bool {
	if index < 0 || index >= len(pf.admittedWalls) {
		return false
	}
	w := &pf.admittedWalls[index]
	if !w.IsDoor() {
		return false
	}
	w.State = state
	pf.walls.SetActive(w, state != mapdata.DoorOpen)
	graph.InvalidateDynamic(pf.nodes)
	return true
}

// FindPath runs a weighted best-first search from the destination back to
// the origin and returns the path as a finite ordered sequence starting at
// the destination and ending at the origin, or (nil, false) if no path
// exists. Search direction is destination -> origin so the back-pointer
// chain needs only one reversal to reach that external, destination-first
// ordering.
func (pf *Pathfinder) FindPath(from, to geometry.Point) ([]geometry.Point, bool) {
	pf.nodes.ClearFinalEdges()

	originNode := graph.NewNode(from)
	pf.nodes.SetFinal(originNode)

	destNode := graph.NewNode(to)
	graph.DiscoverEdges(destNode, pf.nodes, pf.walls, pf.bounds, pf.oracle)
	graph.ComputeFinalEdge(destNode, originNode, pf.walls, pf.bounds, pf.oracle)

	root := &discoveredNode{node: destNode, cost: 0, estimated: to.DistanceTo(from)}

	pq := make(frontier, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, root)

	enqueued := map[*graph.Node]*discoveredNode{destNode: root}
	finalized := idset.NewSet[graph.Node]()

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*discoveredNode)
		delete(enqueued, current.node)

		if current.node.Point.Exact(from) {
			return buildPath(current), true
		}

		finalized.Insert(current.node)
		graph.DiscoverEdges(current.node, pf.nodes, pf.walls, pf.bounds, pf.oracle)
		graph.ComputeFinalEdge(current.node, originNode, pf.walls, pf.bounds, pf.oracle)

		for _, edge := range current.node.Edges() {
			neighbor := edge.Target
			if finalized.Contains(neighbor) {
				continue
			}
			newCost := current.cost + edge.Cost + pf.tunables.HopPenalty
			newEstimated := newCost + neighbor.Point.DistanceTo(from)

			if existing, ok := enqueued[neighbor]; ok {
				if newCost < existing.cost {
					existing.cost = newCost
					existing.estimated = newEstimated
					existing.previous = current
					heap.Fix(&pq, existing.index)
				}
				continue
			}

			entry := &discoveredNode{node: neighbor, cost: newCost, estimated: newEstimated, previous: current}
			heap.Push(&pq, entry)
			enqueued[neighbor] = entry
		}
	}

	return nil, false
}

// buildPath walks the back-pointer chain starting at the discovered node
// matching the query origin (so the walk naturally produces origin-first,
// destination-last order) and reverses it to the destination-first,
// origin-last order the external contract requires.
func buildPath(originMatch *discoveredNode) []geometry.Point {
	var points []geometry.Point
	for n := originMatch; n != nil; n = n.previous {
		points = append(points, n.node.Point)
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}

// Close releases the Pathfinder's internal graph so it can be garbage
// collected. Go has no manual free; this exists to mirror the free()
// operation named in the engine's host-facing contract.
func (pf *Pathfinder) Close() {
	pf.nodes = nil
	pf.walls = nil
	pf.terrains = nil
	pf.bounds = nil
	pf.admittedWalls = nil
}
