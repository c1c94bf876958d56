package graph

import "github.com/dragonruler/pathfinder/geometry"

// edgeCost returns the Euclidean distance between a and b, unless any of
// terrainBounds intersects the connecting segment, in which case cost comes
// from the external distance oracle instead.
func edgeCost(a, b geometry.Point, terrainBounds []geometry.Rect, oracle TerrainDistanceFunc) float64 {
	seg := geometry.NewSegment(a, b)
	for _, bounds := range terrainBounds {
		if bounds.IntersectsSegment(seg) {
			if oracle != nil {
				return oracle(a, b)
			}
			break
		}
	}
	return a.DistanceTo(b)
}

// DiscoverEdges lazily computes a node's persistent and dynamic edges on
// first visit. Persistent edges, once computed, are never recomputed.
//
// For every other regular node, the connecting segment is classified:
//  1. it crosses a persistent (always-blocking) segment: no edge, ever.
//  2. it crosses no persistent segment but crosses one or more dynamic
//     segments: the neighbor is remembered for cheap recomputation, and
//     contributes a dynamic edge now iff none of the crossed dynamic
//     segments are currently active.
//  3. it crosses neither: a permanent persistent edge.
func DiscoverEdges(n *Node, storage *NodeStorage, walls *WallStorage, terrainBounds []geometry.Rect, oracle TerrainDistanceFunc) {
	if n.state == Uninitialised {
		for _, other := range storage.Regular() {
			if other == n {
				continue
			}
			seg := geometry.NewSegment(n.Point, other.Point)
			if walls.CrossesPersistent(seg) {
				continue
			}
			crossesDynamic, crossesActive := walls.AnyDynamicIntersects(seg)
			if !crossesDynamic {
				cost := edgeCost(n.Point, other.Point, terrainBounds, oracle)
				n.persistent = append(n.persistent, Edge{Target: other, Cost: cost})
				continue
			}
			n.dynamicNeighbors = append(n.dynamicNeighbors, other)
			if !crossesActive {
				cost := edgeCost(n.Point, other.Point, terrainBounds, oracle)
				n.dynamic = append(n.dynamic, Edge{Target: other, Cost: cost})
			}
		}
		n.state = DynamicReady
		return
	}

	if n.state == PersistentReady {
		RefreshDynamicEdges(n, walls, terrainBounds, oracle)
	}
}

// RefreshDynamicEdges recomputes only a node's dynamic edges, by re-testing
// visibility for each remembered dynamic neighbor against the wall store's
// current door states. persistent is left untouched.
func RefreshDynamicEdges(n *Node, walls *WallStorage, terrainBounds []geometry.Rect, oracle TerrainDistanceFunc) {
	n.dynamic = n.dynamic[:0]
	for _, neighbor := range n.dynamicNeighbors {
		seg := geometry.NewSegment(n.Point, neighbor.Point)
		if walls.CrossesActiveDynamic(seg) {
			continue
		}
		cost := edgeCost(n.Point, neighbor.Point, terrainBounds, oracle)
		n.dynamic = append(n.dynamic, Edge{Target: neighbor, Cost: cost})
	}
	n.state = DynamicReady
}

// InvalidateDynamic marks every regular node's dynamic edges stale, forcing
// the next DiscoverEdges call on each to refresh them. Call after a door's
// state changes.
func InvalidateDynamic(storage *NodeStorage) {
	for _, n := range storage.Regular() {
		if n.state == DynamicReady {
			n.state = PersistentReady
		}
	}
}

// ComputeFinalEdge computes, if not already computed for this query, the
// single edge from n to the final (origin) node, provided the connecting
// segment is not blocked by any currently-blocking wall.
func ComputeFinalEdge(n *Node, final *Node, walls *WallStorage, terrainBounds []geometry.Rect, oracle TerrainDistanceFunc) {
	if n.finalComputed {
		return
	}
	seg := geometry.NewSegment(n.Point, final.Point)
	if !walls.CrossesAnyBlocking(seg) {
		cost := edgeCost(n.Point, final.Point, terrainBounds, oracle)
		n.finalEdge = &Edge{Target: final, Cost: cost}
	} else {
		n.finalEdge = nil
	}
	n.finalComputed = true
}
