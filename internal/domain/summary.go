package domain

import "github.com/campus-navigator/internal/geometry"

// Summarize converts a route into its serialisable form.
func (r Route) Summarize() RouteSummary {
	segments := make([]SegmentSummary, 0, len(r.Segments))
	for _, s := range r.Segments {
		segments = append(segments, SegmentSummary{
			ID:          s.ID,
			Name:        s.Name,
			Type:        s.Type,
			From:        s.From,
			To:          s.To,
			Length:      s.Length(),
			Coordinates: geometry.Coordinates(s.Geometry),
		})
	}

	path := r.NodePath
	if path == nil {
		path = []string{}
	}

	return RouteSummary{
		StartNodeID:   r.StartNodeID,
		EndNodeID:     r.EndNodeID,
		NodePath:      path,
		Segments:      segments,
		Distance:      r.Distance,
		EstimatedTime: r.EstimatedTime,
	}
}
