package usecase

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/domain/repository"
	"github.com/campus-navigator/internal/pkg/errors"
	"github.com/campus-navigator/internal/session"
	"github.com/campus-navigator/internal/usecase/dto"
)

// Share link query parameters
const (
	linkStartNode = "startNode"
	linkEndNode   = "endNode"
	linkDistance  = "distance"
	linkTime      = "time"
	linkDesc      = "desc"
	linkCampus    = "campus"
)

// ShareConfig - параметры ссылок для передачи маршрута на телефон
type ShareConfig struct {
	BaseURL     string
	CampusID    string
	DefaultNode string // end node when the link omits one
}

// RouteUseCase - построение маршрутов между узлами кампуса
type RouteUseCase struct {
	networks   NetworkProvider
	cacheRepo  repository.CacheRepository  // nil disables caching
	streamRepo repository.StreamRepository // nil disables route events
	cacheTTL   time.Duration
	share      ShareConfig
	logger     *zap.Logger
}

// NewRouteUseCase - создание нового RouteUseCase
func NewRouteUseCase(
	networks NetworkProvider,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	cacheTTL time.Duration,
	share ShareConfig,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		networks:   networks,
		cacheRepo:  cacheRepo,
		streamRepo: streamRepo,
		cacheTTL:   cacheTTL,
		share:      share,
		logger:     logger,
	}
}

// FindRoute строит маршрут между двумя узлами
func (uc *RouteUseCase) FindRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	network, err := uc.networks.Network(ctx)
	if err != nil {
		return nil, err
	}

	startID, ok := network.ResolveNodeID(req.StartNodeID)
	if !ok {
		return nil, errors.ErrNodeNotFound.WithDetails(map[string]interface{}{"node_id": req.StartNodeID})
	}
	endID, ok := network.ResolveNodeID(req.EndNodeID)
	if !ok {
		return nil, errors.ErrNodeNotFound.WithDetails(map[string]interface{}{"node_id": req.EndNodeID})
	}

	version := network.Version()
	resp := &dto.RouteResponse{
		GraphVersion: version,
		RouteInfo:    req.RouteInfo,
		Metadata:     req.Metadata,
	}

	if cached := uc.cachedRoute(ctx, version, startID, endID); cached != nil {
		resp.Route = *cached
		resp.Cached = true
		return resp, nil
	}

	route, err := network.Route(startID, endID)
	if err != nil {
		uc.logger.Info("Route not found",
			zap.String("start_node", startID),
			zap.String("end_node", endID),
			zap.Error(err))
		return nil, mapError(err, routeDetails(startID, endID))
	}

	summary := route.Summarize()
	uc.cacheRoute(ctx, version, &summary)
	uc.publishComputed(ctx, "", version, summary)

	uc.logger.Debug("Route computed",
		zap.String("start_node", startID),
		zap.String("end_node", endID),
		zap.Float64("distance", summary.Distance),
		zap.Int("segments", len(summary.Segments)))

	resp.Route = summary
	return resp, nil
}

// Route computes a route between two node ids. It implements
// session.Navigator.
func (uc *RouteUseCase) Route(ctx context.Context, startID, endID string) (domain.Route, error) {
	network, err := uc.networks.Network(ctx)
	if err != nil {
		return domain.Route{}, err
	}

	route, err := network.Route(startID, endID)
	if err != nil {
		return route, mapError(err, routeDetails(startID, endID))
	}
	return route, nil
}

// ClosestNode snaps a coordinate to the closest routable node. It implements
// session.Navigator.
func (uc *RouteUseCase) ClosestNode(ctx context.Context, lon, lat float64) (*domain.Node, error) {
	network, err := uc.networks.Network(ctx)
	if err != nil {
		return nil, err
	}
	if !network.Contains(lon, lat) {
		return nil, session.ErrOutsideCampus
	}
	return network.ClosestNode(lon, lat), nil
}

// PublishComputed sends a route to the presentation stream. Errors are logged.
func (uc *RouteUseCase) PublishComputed(ctx context.Context, sessionID string, route domain.Route) {
	version := ""
	if network, err := uc.networks.Network(ctx); err == nil {
		version = network.Version()
	}
	uc.publishComputed(ctx, sessionID, version, route.Summarize())
}

// BuildShareLink формирует ссылку, по которой маршрут открывается на телефоне.
// Если расстояние и время не переданы, они вычисляются по графу
func (uc *RouteUseCase) BuildShareLink(ctx context.Context, req dto.ShareLinkRequest) (*dto.ShareLinkResponse, error) {
	network, err := uc.networks.Network(ctx)
	if err != nil {
		return nil, err
	}

	startID, ok := network.ResolveNodeID(req.StartNodeID)
	if !ok {
		return nil, errors.ErrNodeNotFound.WithDetails(map[string]interface{}{"node_id": req.StartNodeID})
	}

	endRaw := req.EndNodeID
	if endRaw == "" {
		endRaw = uc.share.DefaultNode
	}
	endID, ok := network.ResolveNodeID(endRaw)
	if !ok {
		return nil, errors.ErrNodeNotFound.WithDetails(map[string]interface{}{"node_id": endRaw})
	}

	distance, minutes := req.Distance, req.EstimatedTime
	if distance == 0 && minutes == 0 {
		if route, err := network.Route(startID, endID); err == nil {
			distance, minutes = route.Distance, route.EstimatedTime
		}
	}

	campus := req.CampusID
	if campus == "" {
		campus = uc.share.CampusID
	}

	q := url.Values{}
	q.Set(linkStartNode, startID)
	q.Set(linkEndNode, endID)
	if distance > 0 || minutes > 0 {
		q.Set(linkDistance, strconv.FormatFloat(distance, 'f', 1, 64))
		q.Set(linkTime, strconv.FormatFloat(minutes, 'f', 1, 64))
	}
	if req.Description != "" {
		q.Set(linkDesc, req.Description)
	}
	if campus != "" {
		q.Set(linkCampus, campus)
	}

	return &dto.ShareLinkResponse{
		URL:         strings.TrimRight(uc.share.BaseURL, "/") + "/route?" + q.Encode(),
		StartNodeID: startID,
		EndNodeID:   endID,
	}, nil
}

// ParseShareLink reads a route request from share link query parameters.
// A missing endNode falls back to the default node. Route info is kept only
// when both distance and time parse.
func (uc *RouteUseCase) ParseShareLink(values url.Values) (dto.RouteRequest, error) {
	start := strings.TrimSpace(values.Get(linkStartNode))
	if start == "" {
		return dto.RouteRequest{}, errors.ErrInvalidShareLink.WithDetails(map[string]interface{}{
			"missing": linkStartNode,
		})
	}

	end := strings.TrimSpace(values.Get(linkEndNode))
	if end == "" {
		end = uc.share.DefaultNode
	}
	if end == "" {
		return dto.RouteRequest{}, errors.ErrInvalidShareLink.WithDetails(map[string]interface{}{
			"missing": linkEndNode,
		})
	}

	req := dto.RouteRequest{StartNodeID: start, EndNodeID: end}

	distance, errDist := strconv.ParseFloat(values.Get(linkDistance), 64)
	minutes, errTime := strconv.ParseFloat(values.Get(linkTime), 64)
	if errDist == nil && errTime == nil {
		req.RouteInfo = &domain.RouteInfo{
			Distance:      distance,
			EstimatedTime: minutes,
			Description:   values.Get(linkDesc),
		}
	}

	if campus := values.Get(linkCampus); campus != "" {
		req.Metadata = &domain.RouteMetadata{CampusID: campus}
	}

	return req, nil
}

// FindRouteFromLink parses a share link and computes its route.
func (uc *RouteUseCase) FindRouteFromLink(ctx context.Context, values url.Values) (*dto.RouteResponse, error) {
	req, err := uc.ParseShareLink(values)
	if err != nil {
		return nil, err
	}
	return uc.FindRoute(ctx, req)
}

func (uc *RouteUseCase) cachedRoute(ctx context.Context, version, startID, endID string) *domain.RouteSummary {
	if uc.cacheRepo == nil {
		return nil
	}
	summary, err := uc.cacheRepo.GetRoute(ctx, version, startID, endID)
	if err != nil {
		uc.logger.Warn("Failed to read route from cache", zap.Error(err))
		return nil
	}
	return summary
}

func (uc *RouteUseCase) cacheRoute(ctx context.Context, version string, summary *domain.RouteSummary) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.SetRoute(ctx, version, summary, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache route", zap.Error(err))
	}
}

func (uc *RouteUseCase) publishComputed(ctx context.Context, sessionID, version string, summary domain.RouteSummary) {
	if uc.streamRepo == nil {
		return
	}
	event := domain.RouteComputedEvent{
		SessionID:    sessionID,
		GraphVersion: version,
		Route:        summary,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamRouteComputed, event); err != nil {
		uc.logger.Warn("Failed to publish route event",
			zap.String("stream", domain.StreamRouteComputed),
			zap.Error(err))
	}
}
