// Package mapdata describes the typed scene inputs the pathfinder consumes:
// walls (with door state, sense type and vertical extent) and difficult
// terrain (polygon or circle, with a bounding rectangle). It also carries
// the token profile (size, elevation, whether height gating is enabled).
//
// Nothing in this package touches the visibility graph itself; it only
// models and validates the raw geometry the host hands in.
package mapdata
