package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/domain/repository"
	"github.com/campus-navigator/internal/pkg/errors"
	"github.com/campus-navigator/internal/roadgraph"
)

// NetworkProvider отдаёт текущий граф дорог, дожидаясь его загрузки
type NetworkProvider interface {
	Network(ctx context.Context) (*roadgraph.Network, error)
}

// GraphUseCase - загрузка и перезагрузка графа дорог кампуса
type GraphUseCase struct {
	source       repository.FeatureSource
	store        *roadgraph.Store
	walkingSpeed float64
	campusBuffer float64
	readyTimeout time.Duration
	logger       *zap.Logger

	reloadMu sync.Mutex
}

// GraphOption настраивает GraphUseCase
type GraphOption func(*GraphUseCase)

// WithCampusBuffer sets how far, in meters, beyond the outermost nodes a
// position still counts as on campus. Negative disables the check.
func WithCampusBuffer(meters float64) GraphOption {
	return func(uc *GraphUseCase) {
		uc.campusBuffer = meters
	}
}

// NewGraphUseCase - создание нового GraphUseCase
func NewGraphUseCase(
	source repository.FeatureSource,
	store *roadgraph.Store,
	walkingSpeed float64,
	readyTimeout time.Duration,
	logger *zap.Logger,
	opts ...GraphOption,
) *GraphUseCase {
	uc := &GraphUseCase{
		source:       source,
		store:        store,
		walkingSpeed: walkingSpeed,
		readyTimeout: readyTimeout,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Load reads features from the source, builds a new network and publishes
// it. On failure the previously published network stays in place.
func (uc *GraphUseCase) Load(ctx context.Context) (domain.GraphStats, error) {
	uc.reloadMu.Lock()
	defer uc.reloadMu.Unlock()

	started := time.Now()

	nodes, err := uc.source.LoadNodes(ctx)
	if err != nil {
		uc.logger.Error("Failed to load nodes", zap.String("source", uc.source.Name()), zap.Error(err))
		return domain.GraphStats{}, errors.ErrFeatureSourceError.WithDetails(map[string]interface{}{
			"source": uc.source.Name(),
			"stage":  "nodes",
		})
	}

	segments, err := uc.source.LoadSegments(ctx)
	if err != nil {
		uc.logger.Error("Failed to load segments", zap.String("source", uc.source.Name()), zap.Error(err))
		return domain.GraphStats{}, errors.ErrFeatureSourceError.WithDetails(map[string]interface{}{
			"source": uc.source.Name(),
			"stage":  "segments",
		})
	}

	network := roadgraph.NewNetwork(nodes, segments, roadgraph.Options{
		Source:       uc.source.Name(),
		WalkingSpeed: uc.walkingSpeed,
		CampusBuffer: uc.campusBuffer,
	}, uc.logger)
	uc.store.Publish(network)

	stats := network.Stats()
	uc.logger.Info("Road network published",
		zap.String("version", stats.Version),
		zap.String("source", stats.Source),
		zap.Int("vertices", stats.Vertices),
		zap.Int("destinations", stats.Destinations),
		zap.Duration("took", time.Since(started)))

	return stats, nil
}

// Network returns the current network, waiting up to the configured timeout
// for the first load to finish.
func (uc *GraphUseCase) Network(ctx context.Context) (*roadgraph.Network, error) {
	network, err := uc.store.Wait(ctx, uc.readyTimeout)
	if err != nil {
		uc.logger.Warn("Road network not ready", zap.Duration("timeout", uc.readyTimeout))
		return nil, mapError(err, nil)
	}
	return network, nil
}

// Stats - статистика текущего графа
func (uc *GraphUseCase) Stats(ctx context.Context) (domain.GraphStats, error) {
	network, err := uc.Network(ctx)
	if err != nil {
		return domain.GraphStats{}, err
	}
	return network.Stats(), nil
}

// Ready reports whether a network has been published.
func (uc *GraphUseCase) Ready() bool {
	_, ok := uc.store.Current()
	return ok
}
