// Package config loads the pathfinding engine's tunable constants and
// token profile defaults from a YAML file, grounding la2go's
// internal/config loading pattern, and converts them into the typed values
// pathfinder and mapdata expect.
package config
