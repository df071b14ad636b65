package usecase

import (
	stderrors "errors"

	"github.com/campus-navigator/internal/pkg/errors"
	"github.com/campus-navigator/internal/roadgraph"
	"github.com/campus-navigator/internal/session"
)

// mapError converts routing and session errors into API errors. Unknown
// errors pass through unchanged.
func mapError(err error, details map[string]interface{}) error {
	if err == nil {
		return nil
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}

	switch {
	case stderrors.Is(err, roadgraph.ErrNodeNotFound):
		appErr = errors.ErrNodeNotFound
	case stderrors.Is(err, roadgraph.ErrNoPath):
		appErr = errors.ErrNoPath
	case stderrors.Is(err, roadgraph.ErrGraphNotReady):
		appErr = errors.ErrGraphNotReady
	case stderrors.Is(err, session.ErrNoStartingPoint):
		appErr = errors.ErrNoStartingPoint
	case stderrors.Is(err, session.ErrSessionNotFound):
		appErr = errors.ErrSessionNotFound
	default:
		return err
	}

	if len(details) > 0 {
		return appErr.WithDetails(details)
	}
	return appErr
}

func routeDetails(startID, endID string) map[string]interface{} {
	return map[string]interface{}{
		"start_node_id": startID,
		"end_node_id":   endID,
	}
}
