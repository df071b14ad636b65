package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/domain/repository"
	"github.com/campus-navigator/internal/geometry"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/paulmach/orb/encoding/wkb"
	"go.uber.org/zap"
)

// SourceName - имя источника в статистике графа
const SourceName = "postgres"

type featureRepository struct {
	db        *sqlx.DB
	health    func(ctx context.Context) error
	logger    *zap.Logger
	roadTypes []string
}

// NewFeatureRepository returns a FeatureSource reading the campus_nodes and
// campus_roads tables. When roadTypes is not empty only those road types are
// loaded.
func NewFeatureRepository(db *DB, roadTypes []string) repository.FeatureSource {
	return &featureRepository{
		db:        db.DB,
		health:    db.Health,
		logger:    db.logger,
		roadTypes: roadTypes,
	}
}

type nodeRow struct {
	ID            string         `db:"id"`
	Name          sql.NullString `db:"name"`
	IsDestination bool           `db:"is_destination"`
	Description   sql.NullString `db:"description"`
	Category      sql.NullString `db:"category"`
	ImageURL      sql.NullString `db:"image_url"`
	Geom          []byte         `db:"geom"`
}

type roadRow struct {
	ID       string         `db:"id"`
	Name     sql.NullString `db:"name"`
	RoadType sql.NullString `db:"road_type"`
	FromNode sql.NullString `db:"from_node"`
	ToNode   sql.NullString `db:"to_node"`
	Geom     []byte         `db:"geom"`
}

func (r *featureRepository) Name() string { return SourceName }

// Health lets /health report the database behind the graph.
func (r *featureRepository) Health(ctx context.Context) error { return r.health(ctx) }

func (r *featureRepository) LoadNodes(ctx context.Context) ([]domain.NodeFeature, error) {
	query := `
		SELECT
			id, name, is_destination, description, category, image_url,
			ST_AsBinary(ST_Transform(geom, 4326)) AS geom
		FROM campus_nodes
		ORDER BY sort_order, id
	`

	var rows []nodeRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to load campus nodes", zap.Error(err))
		return nil, fmt.Errorf("load campus nodes: %w", err)
	}

	nodes := make([]domain.NodeFeature, 0, len(rows))
	for _, row := range rows {
		nodes = append(nodes, domain.NodeFeature{
			ID:            row.ID,
			Name:          row.Name.String,
			IsDestination: row.IsDestination,
			Description:   row.Description.String,
			Category:      row.Category.String,
			ImageURL:      row.ImageURL.String,
			Geometry:      r.decode(row.ID, row.Geom),
		})
	}

	r.logger.Debug("Campus nodes loaded", zap.Int("count", len(nodes)))
	return nodes, nil
}

func (r *featureRepository) LoadSegments(ctx context.Context) ([]domain.Segment, error) {
	query := `
		SELECT
			id, name, road_type, from_node, to_node,
			ST_AsBinary(ST_Transform(geom, 4326)) AS geom
		FROM campus_roads
		WHERE $1::text[] IS NULL OR road_type = ANY($1::text[])
		ORDER BY sort_order, id
	`

	var types interface{}
	if len(r.roadTypes) > 0 {
		types = pq.Array(r.roadTypes)
	}

	var rows []roadRow
	if err := r.db.SelectContext(ctx, &rows, query, types); err != nil {
		r.logger.Error("Failed to load campus roads",
			zap.Strings("road_types", r.roadTypes),
			zap.Error(err))
		return nil, fmt.Errorf("load campus roads: %w", err)
	}

	segments := make([]domain.Segment, 0, len(rows))
	for _, row := range rows {
		segments = append(segments, domain.Segment{
			ID:       row.ID,
			Name:     row.Name.String,
			Type:     domain.ParseRoadType(row.RoadType.String),
			From:     row.FromNode.String,
			To:       row.ToNode.String,
			Geometry: r.decode(row.ID, row.Geom),
		})
	}

	r.logger.Debug("Campus roads loaded", zap.Int("count", len(segments)))
	return segments, nil
}

// decode parses WKB geometry. Broken geometry yields a nil shape so the graph
// builder skips the feature instead of failing the whole load.
func (r *featureRepository) decode(id string, data []byte) geometry.Shape {
	if len(data) == 0 {
		return nil
	}
	g, err := wkb.Unmarshal(data)
	if err != nil {
		r.logger.Warn("Failed to decode feature geometry", zap.String("id", id), zap.Error(err))
		return nil
	}
	return geometry.FromOrb(g)
}
