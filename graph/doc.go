// Package graph holds the visibility-graph's node and wall storage: the
// regular nodes generated once at initialisation, the transient per-query
// final (origin) node, and the lazy, three-way partitioned edge discovery
// that keeps a door toggle from invalidating the expensive persistent
// subgraph.
//
// Node identity is the Go pointer, not the Point it carries — two distinct
// nodes may sit at the same corner coordinates (flank waypoints generated
// from the same wall endpoint) and must never be merged.
package graph
