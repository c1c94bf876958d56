// Package nodegen builds the visibility-graph's regular nodes from wall and
// terrain geometry, applying the corner-offset rule that decides where
// navigation waypoints must lie so a token of non-zero radius can follow
// the resulting path without clipping corners.
package nodegen
