// Package source picks the feature source named by the configuration.
package source

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/campus-navigator/internal/config"
	"github.com/campus-navigator/internal/domain/repository"
	"github.com/campus-navigator/internal/repository/geojson"
	"github.com/campus-navigator/internal/repository/overpass"
	"github.com/campus-navigator/internal/repository/postgres"
)

// New returns the configured feature source and a close function for the
// resources it holds. The close function is never nil.
func New(cfg *config.Config, logger *zap.Logger) (repository.FeatureSource, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source.Kind {
	case config.SourceGeoJSON:
		return geojson.NewFeatureRepository(cfg.Source.NodesPath, cfg.Source.RoadsPath, cfg.Routing.RoadTypes, logger), noop, nil

	case config.SourcePostgres:
		db, err := postgres.New(&cfg.Database, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		return postgres.NewFeatureRepository(db, cfg.Routing.RoadTypes), db.Close, nil

	case config.SourceOverpass:
		return overpass.NewFeatureRepository(cfg.Source.OverpassURL, cfg.Source.OverpassBBox, cfg.Source.OverpassTimeout, logger), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown feature source %q", cfg.Source.Kind)
}
