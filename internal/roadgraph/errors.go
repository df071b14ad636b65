package roadgraph

import "errors"

var (
	// ErrNodeNotFound is returned when a start or end node is not a graph vertex.
	ErrNodeNotFound = errors.New("node not found in graph")

	// ErrNoPath is returned when the end node is unreachable from the start node.
	ErrNoPath = errors.New("no path between nodes")

	// ErrGraphNotReady is returned when no network has been published in time.
	ErrGraphNotReady = errors.New("road graph is not ready")
)
