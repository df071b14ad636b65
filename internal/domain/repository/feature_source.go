package repository

import (
	"context"

	"github.com/campus-navigator/internal/domain"
)

// FeatureSource - источник объектов карты кампуса (узлы и дороги)
type FeatureSource interface {
	// Name returns a short identifier used in logs and graph stats.
	Name() string

	// LoadNodes загружает узлы. Узлы без точки или id отбрасываются при построении графа
	LoadNodes(ctx context.Context) ([]domain.NodeFeature, error)

	// LoadSegments загружает дорожные сегменты
	LoadSegments(ctx context.Context) ([]domain.Segment, error)
}
