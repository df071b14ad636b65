package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/pkg/errors"
	"github.com/campus-navigator/internal/pkg/utils"
	"github.com/campus-navigator/internal/usecase/dto"
)

// NodeUseCase - поиск узлов карты
type NodeUseCase struct {
	networks NetworkProvider
	logger   *zap.Logger
}

// NewNodeUseCase - создание нового NodeUseCase
func NewNodeUseCase(networks NetworkProvider, logger *zap.Logger) *NodeUseCase {
	return &NodeUseCase{
		networks: networks,
		logger:   logger,
	}
}

// Destinations возвращает все пункты назначения в порядке загрузки
func (uc *NodeUseCase) Destinations(ctx context.Context) (*dto.NodeListResponse, error) {
	network, err := uc.networks.Network(ctx)
	if err != nil {
		return nil, err
	}

	nodes := network.Destinations()
	if nodes == nil {
		nodes = []domain.Node{}
	}
	return &dto.NodeListResponse{Nodes: nodes, Total: len(nodes)}, nil
}

// Nearest находит ближайший к точке узел графа
func (uc *NodeUseCase) Nearest(ctx context.Context, q dto.PointQuery) (*dto.NearestNodeResponse, error) {
	if !utils.ValidateCoordinates(q.Lat, q.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	network, err := uc.networks.Network(ctx)
	if err != nil {
		return nil, err
	}

	node := network.ClosestNode(q.Lon, q.Lat)
	if node == nil {
		return nil, errors.ErrNodeNotFound.WithMessage("Road network has no routable nodes")
	}

	return &dto.NearestNodeResponse{
		Node:     *node,
		Distance: utils.DistanceMeters(q.Lat, q.Lon, node.Lat(), node.Lon()),
	}, nil
}

// Nearby находит узлы в радиусе, ближайшие первыми
func (uc *NodeUseCase) Nearby(ctx context.Context, q dto.NearbyQuery) (*dto.NearbyNodesResponse, error) {
	if !utils.ValidateCoordinates(q.Lat, q.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadius(q.RadiusM) {
		return nil, errors.ErrInvalidRadius.WithDetails(map[string]interface{}{"max": utils.MaxNearbyRadiusMeters})
	}

	network, err := uc.networks.Network(ctx)
	if err != nil {
		return nil, err
	}

	found := network.Nearby(q.Lon, q.Lat, q.RadiusM, q.DestinationsOnly)
	nodes := make([]dto.NearbyNode, 0, len(found))
	for _, n := range found {
		nodes = append(nodes, dto.NearbyNode{Node: n.Node, Distance: n.Distance})
	}

	uc.logger.Debug("Nearby nodes",
		zap.Float64("lat", q.Lat),
		zap.Float64("lon", q.Lon),
		zap.Float64("radius_m", q.RadiusM),
		zap.Int("count", len(nodes)))

	return &dto.NearbyNodesResponse{Nodes: nodes, Total: len(nodes)}, nil
}
