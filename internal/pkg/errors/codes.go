package errors

import "net/http"

var (
	ErrNodeNotFound = New(
		"NODE_NOT_FOUND",
		"Node not found in road graph",
		http.StatusNotFound,
	)

	ErrNoPath = New(
		"NO_PATH",
		"No path between the selected nodes",
		http.StatusNotFound,
	)

	ErrNoStartingPoint = New(
		"NO_STARTING_POINT",
		"No current location or default start node",
		http.StatusConflict,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Session not found",
		http.StatusNotFound,
	)

	ErrGraphNotReady = New(
		"GRAPH_NOT_READY",
		"Road graph is not loaded yet",
		http.StatusServiceUnavailable,
	)

	ErrInvalidShareLink = New(
		"INVALID_SHARE_LINK",
		"Invalid route share link",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrFeatureSourceError = New(
		"FEATURE_SOURCE_ERROR",
		"Failed to load map features",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
