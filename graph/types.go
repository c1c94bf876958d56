package graph

import "github.com/dragonruler/pathfinder/geometry"

// NodeState tracks how much of a Node's outgoing edges have been
// materialised. Uninitialised nodes have never been visited by a search;
// PersistentReady nodes have a fixed persistent edge set but stale (or
// never-computed) dynamic edges; DynamicReady nodes have both up to date.
type NodeState int

const (
	// Uninitialised means neither persistent nor dynamic edges have been computed.
	Uninitialised NodeState = iota
	// PersistentReady means persistent edges are final; dynamic edges may be stale.
	PersistentReady
	// DynamicReady means both persistent and dynamic edges reflect current door state.
	DynamicReady
)

// Edge is a directed visibility-graph edge to Target, weighted by Cost.
type Edge struct {
	Target *Node
	Cost   float64
}

// Node is a candidate waypoint plus its lazily-computed edge collections.
//
// persistent never changes once computed. dynamic may be recomputed when
// door state changes, by walking dynamicNeighbors rather than re-testing
// visibility against every other regular node. finalEdge is the (at most
// one) edge to the current query's origin node; it and finalComputed are
// reset between queries.
type Node struct {
	Point geometry.Point

	state            NodeState
	persistent       []Edge
	dynamic          []Edge
	dynamicNeighbors []*Node

	finalEdge     *Edge
	finalComputed bool
}

// NewNode constructs an uninitialised Node at the given point.
func NewNode(p geometry.Point) *Node {
	return &Node{Point: p}
}

// State reports the node's current edge-materialisation state.
func (n *Node) State() NodeState {
	return n.state
}

// Edges returns every currently-known outgoing edge: persistent, dynamic,
// and (if present) the final edge to the query's origin node.
func (n *Node) Edges() []Edge {
	total := len(n.persistent) + len(n.dynamic)
	if n.finalEdge != nil {
		total++
	}
	edges := make([]Edge, 0, total)
	edges = append(edges, n.persistent...)
	edges = append(edges, n.dynamic...)
	if n.finalEdge != nil {
		edges = append(edges, *n.finalEdge)
	}
	return edges
}

// TerrainDistanceFunc is the external, synchronous difficult-terrain cost
// oracle injected at construction. It must return a cost greater than or
// equal to the Euclidean distance between a and b.
type TerrainDistanceFunc func(a, b geometry.Point) float64
