package domain

import "time"

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// GraphStats - статистика построенного графа дорог
type GraphStats struct {
	Version         string      `json:"version"`
	Source          string      `json:"source"`
	Vertices        int         `json:"vertices"`
	Edges           int         `json:"edges"`
	Nodes           int         `json:"nodes"`
	Destinations    int         `json:"destinations"`
	Segments        int         `json:"segments"`
	SkippedNodes    int         `json:"skipped_nodes"`
	SkippedSegments int         `json:"skipped_segments"`
	DuplicateEdges  int         `json:"duplicate_edges"`
	Coverage        BoundingBox `json:"coverage"`
	BuiltAt         time.Time   `json:"built_at"`
	BuildDurationMS float64     `json:"build_duration_ms"`
}
