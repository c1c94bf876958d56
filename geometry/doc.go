// Package geometry provides the pure, stateless 2D primitives the
// visibility-graph pathfinder is built on: points, infinite lines, line
// segments, rectangles and circles, plus the intersection and containment
// tests the rest of the engine depends on bit-exactly.
//
// Every function here is side-effect free and deterministic. Degenerate
// input (parallel lines, zero-length segments, NaN coordinates) never
// panics; it resolves to "no intersection", leaving the caller to treat
// that as "no edge".
package geometry
