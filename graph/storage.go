package graph

import "github.com/dragonruler/pathfinder/geometry"

// WallIterKind selects which view of the partitioned wall store to iterate.
type WallIterKind int

const (
	// WallsAllBlocking yields every segment currently blocking movement:
	// persistent segments plus active dynamic (closed/locked door) segments.
	WallsAllBlocking WallIterKind = iota
	// WallsActiveDynamicOnly yields only the currently-blocking dynamic segments.
	WallsActiveDynamicOnly
	// WallsInactiveDynamicOnly yields only the currently-open dynamic segments.
	WallsInactiveDynamicOnly
)

// dynamicWallEntry is one door-backed segment plus its current blocking state.
type dynamicWallEntry struct {
	segment geometry.Segment
	active  bool // active = currently blocking
}

// WallStorage partitions blocking segments into a persistent (non-door) set
// and a keyed table of dynamic (door) entries, so door toggles only ever
// touch the dynamic partition.
type WallStorage struct {
	persistent []geometry.Segment
	dynamic    map[*dynamicWallEntry]struct{}
	byKey      map[any]*dynamicWallEntry
}

// NewWallStorage returns an empty WallStorage.
func NewWallStorage() *WallStorage {
	return &WallStorage{
		dynamic: make(map[*dynamicWallEntry]struct{}),
		byKey:   make(map[any]*dynamicWallEntry),
	}
}

// AddPersistent registers a segment that always blocks movement (a non-door
// wall or a synthetic corner-blocking segment).
func (ws *WallStorage) AddPersistent(seg geometry.Segment) {
	ws.persistent = append(ws.persistent, seg)
}

// AddDynamic registers a door-backed segment under key (typically the
// *mapdata.Wall it came from), with its initial active (blocking) state.
func (ws *WallStorage) AddDynamic(key any, seg geometry.Segment, active bool) {
	entry := &dynamicWallEntry{segment: seg, active: active}
	ws.dynamic[entry] = struct{}{}
	ws.byKey[key] = entry
}

// SetActive updates the blocking state of the dynamic segment registered
// under key. No-op if key was never registered.
func (ws *WallStorage) SetActive(key any, active bool) {
	if entry, ok := ws.byKey[key]; ok {
		entry.active = active
	}
}

// Persistent returns the always-blocking segments.
func (ws *WallStorage) Persistent() []geometry.Segment {
	return ws.persistent
}

// Iterate returns the segments matching the requested view.
func (ws *WallStorage) Iterate(kind WallIterKind) []geometry.Segment {
	switch kind {
	case WallsActiveDynamicOnly:
		return ws.filterDynamic(true)
	case WallsInactiveDynamicOnly:
		return ws.filterDynamic(false)
	default: // WallsAllBlocking
		segs := make([]geometry.Segment, 0, len(ws.persistent)+len(ws.dynamic))
		segs = append(segs, ws.persistent...)
		segs = append(segs, ws.filterDynamic(true)...)
		return segs
	}
}

func (ws *WallStorage) filterDynamic(active bool) []geometry.Segment {
	segs := make([]geometry.Segment, 0, len(ws.dynamic))
	for entry := range ws.dynamic {
		if entry.active == active {
			segs = append(segs, entry.segment)
		}
	}
	return segs
}

// AnyDynamicIntersects reports whether s crosses any dynamic segment, and
// separately whether any of the crossed segments are currently active.
func (ws *WallStorage) AnyDynamicIntersects(s geometry.Segment) (crossesAny bool, crossesActive bool) {
	for entry := range ws.dynamic {
		if _, ok := entry.segment.Intersect(s); ok {
			crossesAny = true
			if entry.active {
				crossesActive = true
			}
		}
	}
	return crossesAny, crossesActive
}

// CrossesPersistent reports whether s crosses any persistent (always
// blocking) segment.
func (ws *WallStorage) CrossesPersistent(s geometry.Segment) bool {
	for _, wall := range ws.persistent {
		if _, ok := wall.Intersect(s); ok {
			return true
		}
	}
	return false
}

// CrossesActiveDynamic reports whether s crosses any currently-active
// dynamic segment.
func (ws *WallStorage) CrossesActiveDynamic(s geometry.Segment) bool {
	for entry := range ws.dynamic {
		if !entry.active {
			continue
		}
		if _, ok := entry.segment.Intersect(s); ok {
			return true
		}
	}
	return false
}

// CrossesAnyBlocking reports whether s crosses any currently-blocking
// segment: persistent, or active dynamic.
func (ws *WallStorage) CrossesAnyBlocking(s geometry.Segment) bool {
	return ws.CrossesPersistent(s) || ws.CrossesActiveDynamic(s)
}

// NodeStorage is the ordered collection of regular nodes built once at
// initialisation, plus the optional transient final node set per query.
type NodeStorage struct {
	regular []*Node
	final   *Node
}

// NewNodeStorage returns an empty NodeStorage.
func NewNodeStorage() *NodeStorage {
	return &NodeStorage{}
}

// Push appends a regular node. Iteration order over regular nodes is the
// deterministic order nodes were pushed in.
func (ns *NodeStorage) Push(n *Node) {
	ns.regular = append(ns.regular, n)
}

// Regular returns the slice of regular nodes in deterministic push order.
func (ns *NodeStorage) Regular() []*Node {
	return ns.regular
}

// SetFinal installs n as the transient final (origin) node for the current query.
func (ns *NodeStorage) SetFinal(n *Node) {
	ns.final = n
}

// Final returns the current query's final node, or nil if none is set.
func (ns *NodeStorage) Final() *Node {
	return ns.final
}

// ClearFinalEdges wipes the cached final_edge slot on every regular node,
// and clears the transient final node itself. Must be called between queries.
func (ns *NodeStorage) ClearFinalEdges() {
	for _, n := range ns.regular {
		n.finalEdge = nil
		n.finalComputed = false
	}
	ns.final = nil
}

// Range calls fn for every regular node plus the final node, if set.
func (ns *NodeStorage) Range(fn func(*Node)) {
	for _, n := range ns.regular {
		fn(n)
	}
	if ns.final != nil {
		fn(ns.final)
	}
}
