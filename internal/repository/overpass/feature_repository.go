// Package overpass imports campus walkways from OpenStreetMap through the
// Overpass API.
package overpass

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/domain/repository"
	"github.com/campus-navigator/internal/geometry"
	"github.com/paulmach/orb"
	"github.com/serjvanilla/go-overpass"
	"go.uber.org/zap"
)

// SourceName - имя источника в статистике графа
const SourceName = "overpass"

// resultTTL - сколько переиспользуем ответ Overpass между LoadNodes и LoadSegments
const resultTTL = 30 * time.Second

// Querier is the part of the Overpass client the source uses.
type Querier interface {
	Query(query string) (overpass.Result, error)
}

type featureRepository struct {
	client  Querier
	bbox    domain.BoundingBox
	timeout time.Duration
	logger  *zap.Logger

	mu        sync.Mutex
	extract   *extract
	fetchedAt time.Time
	now       func() time.Time
}

// NewFeatureRepository creates a source querying endpoint for the given bbox.
func NewFeatureRepository(endpoint string, bbox domain.BoundingBox, timeout time.Duration, logger *zap.Logger) repository.FeatureSource {
	httpClient := &http.Client{
		Timeout: timeout,
	}
	client := overpass.NewWithSettings(endpoint, 2, httpClient)
	return NewFeatureRepositoryWithClient(&client, bbox, timeout, logger)
}

// NewFeatureRepositoryWithClient creates a source over an existing client.
func NewFeatureRepositoryWithClient(client Querier, bbox domain.BoundingBox, timeout time.Duration, logger *zap.Logger) repository.FeatureSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &featureRepository{
		client:  client,
		bbox:    bbox,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

func (r *featureRepository) Name() string { return SourceName }

func (r *featureRepository) LoadNodes(ctx context.Context) ([]domain.NodeFeature, error) {
	ex, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]domain.NodeFeature(nil), ex.nodes...), nil
}

func (r *featureRepository) LoadSegments(ctx context.Context) ([]domain.Segment, error) {
	ex, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]domain.Segment(nil), ex.segments...), nil
}

// load returns a recent extract or queries Overpass for a fresh one.
func (r *featureRepository) load(ctx context.Context) (*extract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.extract != nil && r.now().Sub(r.fetchedAt) < resultTTL {
		return r.extract, nil
	}

	result, err := r.query(ctx, BuildQuery(r.bbox, r.timeout))
	if err != nil {
		return nil, err
	}

	ex := buildExtract(result)
	r.logger.Info("Overpass extract loaded",
		zap.Int("ways", len(result.Ways)),
		zap.Int("osm_nodes", len(result.Nodes)),
		zap.Int("graph_nodes", len(ex.nodes)),
		zap.Int("segments", len(ex.segments)),
		zap.Int("standalone_pois_skipped", ex.skippedPOIs))

	r.extract = ex
	r.fetchedAt = r.now()
	return ex, nil
}

// query runs the blocking client call while honouring ctx.
func (r *featureRepository) query(ctx context.Context, q string) (overpass.Result, error) {
	type response struct {
		result overpass.Result
		err    error
	}
	done := make(chan response, 1)

	go func() {
		res, err := r.client.Query(q)
		done <- response{result: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return overpass.Result{}, ctx.Err()
	case resp := <-done:
		if resp.err != nil {
			r.logger.Error("Overpass query failed", zap.Error(resp.err))
			return overpass.Result{}, fmt.Errorf("overpass query failed: %w", resp.err)
		}
		return resp.result, nil
	}
}

// BuildQuery returns the Overpass QL query for walkable ways and named or
// entrance nodes inside bbox.
func BuildQuery(bbox domain.BoundingBox, timeout time.Duration) string {
	seconds := int(timeout / time.Second)
	if seconds <= 0 {
		seconds = 60
	}
	box := fmt.Sprintf("%g,%g,%g,%g", bbox.MinLat, bbox.MinLon, bbox.MaxLat, bbox.MaxLon)

	return fmt.Sprintf(`
		[out:json][timeout:%d];
		(
			way["highway"~"^(footway|path|pedestrian|steps|living_street|service|residential|cycleway|track|unclassified|tertiary|secondary|primary)$"](%s);
			node["entrance"](%s);
			node["name"](%s);
		);
		out body;
		>;
		out skel qt;
	`, seconds, box, box, box)
}

type extract struct {
	nodes       []domain.NodeFeature
	segments    []domain.Segment
	skippedPOIs int
}

// buildExtract turns OSM ways into graph features. Way endpoints and nodes
// shared by several ways become graph nodes; named or entrance nodes on a way
// become destinations. Every way is split into one segment per pair of
// consecutive graph nodes.
func buildExtract(result overpass.Result) *extract {
	ways := sortedWays(result.Ways)

	usage := make(map[int64]int)
	for _, w := range ways {
		for _, n := range w.Nodes {
			if n != nil {
				usage[n.ID]++
			}
		}
	}

	isGraphNode := func(w *overpass.Way, i int) bool {
		n := w.Nodes[i]
		return i == 0 || i == len(w.Nodes)-1 || usage[n.ID] > 1 || isPOI(n)
	}

	ex := &extract{}
	added := make(map[int64]bool)
	addNode := func(n *overpass.Node) {
		if added[n.ID] {
			return
		}
		added[n.ID] = true
		ex.nodes = append(ex.nodes, domain.NodeFeature{
			ID:            nodeID(n.ID),
			Name:          n.Tags["name"],
			IsDestination: isPOI(n),
			Description:   n.Tags["description"],
			Category:      category(n.Tags),
			Geometry:      geometry.Point(n.Lon, n.Lat),
		})
	}

	for _, w := range ways {
		if len(w.Nodes) < 2 || hasNil(w.Nodes) {
			continue
		}

		start := 0
		part := 0
		addNode(w.Nodes[0])
		for i := 1; i < len(w.Nodes); i++ {
			if !isGraphNode(w, i) {
				continue
			}
			addNode(w.Nodes[i])

			line := make(orb.LineString, 0, i-start+1)
			for _, n := range w.Nodes[start : i+1] {
				line = append(line, orb.Point{n.Lon, n.Lat})
			}
			ex.segments = append(ex.segments, domain.Segment{
				ID:       fmt.Sprintf("way/%d/%d", w.ID, part),
				Name:     w.Tags["name"],
				Type:     roadType(w.Tags["highway"]),
				From:     nodeID(w.Nodes[start].ID),
				To:       nodeID(w.Nodes[i].ID),
				Geometry: geometry.FromOrb(line),
			})
			start = i
			part++
		}
	}

	for _, n := range sortedNodes(result.Nodes) {
		if isPOI(n) && usage[n.ID] == 0 {
			ex.skippedPOIs++
		}
	}

	return ex
}

func nodeID(id int64) string {
	return "node/" + strconv.FormatInt(id, 10)
}

func isPOI(n *overpass.Node) bool {
	if n == nil {
		return false
	}
	_, entrance := n.Tags["entrance"]
	return entrance || n.Tags["name"] != ""
}

func category(tags map[string]string) string {
	for _, key := range []string{"amenity", "building", "entrance", "leisure", "shop"} {
		if v := tags[key]; v != "" {
			if key == "entrance" {
				return "entrance"
			}
			return v
		}
	}
	return ""
}

// roadType maps an OSM highway tag onto a road class.
func roadType(highway string) domain.RoadType {
	switch highway {
	case "primary", "secondary", "tertiary", "residential", "unclassified":
		return domain.RoadTypeMain
	case "footway", "path", "steps", "cycleway", "track":
		return domain.RoadTypePath
	default:
		return domain.RoadTypeSecondary
	}
}

func hasNil(nodes []*overpass.Node) bool {
	for _, n := range nodes {
		if n == nil {
			return true
		}
	}
	return false
}

func sortedWays(m map[int64]*overpass.Way) []*overpass.Way {
	out := make([]*overpass.Way, 0, len(m))
	for _, w := range m {
		if w != nil {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedNodes(m map[int64]*overpass.Node) []*overpass.Node {
	out := make([]*overpass.Node, 0, len(m))
	for _, n := range m {
		if n != nil {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
