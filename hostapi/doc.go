// Package hostapi is the wire boundary between an embedding host (a game
// server, a map editor, anything holding raw scene data) and the pathfinder
// engine: it decodes plain-data wall and terrain records into the typed
// mapdata model, computes the content hash hosts use to key cached engine
// instances, and wraps *pathfinder.Pathfinder with the single-instance
// concurrency discipline the engine itself does not enforce.
package hostapi
