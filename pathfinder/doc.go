// Package pathfinder builds the visibility graph from wall and terrain
// geometry at initialisation and runs a weighted, destination-to-origin
// best-first search per query.
//
// The search direction is destination -> origin. The back-pointer chain,
// walked from the origin, yields origin-first order; a single reversal
// turns it into the returned order, which starts at the destination and
// ends at the origin. The frontier is a container/heap-based indexed priority queue:
// each discovered node tracks its own heap slot, so a cheaper route found
// later updates the existing entry in place (heap.Fix) rather than pushing
// a stale duplicate.
package pathfinder
