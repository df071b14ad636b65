// Package geojson loads campus nodes and roads from GeoJSON FeatureCollection
// files.
package geojson

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/domain/repository"
	"github.com/campus-navigator/internal/geometry"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// SourceName - имя источника в статистике графа
const SourceName = "geojson"

type featureRepository struct {
	nodesPath string
	roadsPath string
	roadTypes map[domain.RoadType]struct{}
	logger    *zap.Logger
}

// NewFeatureRepository returns a FeatureSource reading two files. When
// roadTypes is not empty only those road types are loaded.
func NewFeatureRepository(nodesPath, roadsPath string, roadTypes []string, logger *zap.Logger) repository.FeatureSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &featureRepository{
		nodesPath: nodesPath,
		roadsPath: roadsPath,
		logger:    logger,
	}
	if len(roadTypes) > 0 {
		r.roadTypes = make(map[domain.RoadType]struct{}, len(roadTypes))
		for _, t := range roadTypes {
			r.roadTypes[domain.ParseRoadType(t)] = struct{}{}
		}
	}
	return r
}

func (r *featureRepository) Name() string { return SourceName }

func (r *featureRepository) LoadNodes(ctx context.Context) ([]domain.NodeFeature, error) {
	fc, err := r.read(ctx, r.nodesPath)
	if err != nil {
		return nil, err
	}

	nodes := make([]domain.NodeFeature, 0, len(fc.Features))
	for _, f := range fc.Features {
		imageURL := stringProp(f.Properties, "imageUrl")
		if imageURL == "" {
			imageURL = stringProp(f.Properties, "imageName")
		}

		nodes = append(nodes, domain.NodeFeature{
			ID:            featureID(f),
			Name:          stringProp(f.Properties, "name"),
			IsDestination: boolProp(f.Properties, "isDestination"),
			Description:   stringProp(f.Properties, "description"),
			Category:      stringProp(f.Properties, "category"),
			ImageURL:      imageURL,
			Geometry:      geometry.FromOrb(f.Geometry),
		})
	}

	r.logger.Debug("GeoJSON nodes loaded",
		zap.String("path", r.nodesPath),
		zap.Int("count", len(nodes)))
	return nodes, nil
}

func (r *featureRepository) LoadSegments(ctx context.Context) ([]domain.Segment, error) {
	fc, err := r.read(ctx, r.roadsPath)
	if err != nil {
		return nil, err
	}

	segments := make([]domain.Segment, 0, len(fc.Features))
	filtered := 0
	for _, f := range fc.Features {
		roadType := domain.ParseRoadType(stringProp(f.Properties, "type"))
		if r.roadTypes != nil {
			if _, ok := r.roadTypes[roadType]; !ok {
				filtered++
				continue
			}
		}

		segments = append(segments, domain.Segment{
			ID:       featureID(f),
			Name:     stringProp(f.Properties, "name"),
			Type:     roadType,
			From:     stringProp(f.Properties, "from"),
			To:       stringProp(f.Properties, "to"),
			Geometry: geometry.FromOrb(f.Geometry),
		})
	}

	r.logger.Debug("GeoJSON roads loaded",
		zap.String("path", r.roadsPath),
		zap.Int("count", len(segments)),
		zap.Int("filtered_by_type", filtered))
	return segments, nil
}

func (r *featureRepository) read(ctx context.Context, path string) (*geojson.FeatureCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Error("Failed to read GeoJSON file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		r.logger.Error("Failed to parse GeoJSON file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// featureID prefers the "id" property and falls back to the feature id.
func featureID(f *geojson.Feature) string {
	if id := stringProp(f.Properties, "id"); id != "" {
		return id
	}
	return scalarString(f.ID)
}

func stringProp(props geojson.Properties, key string) string {
	if props == nil {
		return ""
	}
	return strings.TrimSpace(scalarString(props[key]))
}

// boolProp accepts JSON booleans and the strings "true"/"yes"/"1".
func boolProp(props geojson.Properties, key string) bool {
	if props == nil {
		return false
	}
	switch v := props[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1":
			return true
		}
	case float64:
		return v != 0
	}
	return false
}

func scalarString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
