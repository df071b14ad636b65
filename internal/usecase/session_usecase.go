package usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/pkg/errors"
	"github.com/campus-navigator/internal/pkg/utils"
	"github.com/campus-navigator/internal/session"
	"github.com/campus-navigator/internal/usecase/dto"
)

// RoutePublisher отправляет построенные маршруты слою отображения
type RoutePublisher interface {
	PublishComputed(ctx context.Context, sessionID string, route domain.Route)
}

// SessionUseCase - навигационные сессии посетителей
type SessionUseCase struct {
	registry  *session.Registry
	networks  NetworkProvider
	publisher RoutePublisher // may be nil
	logger    *zap.Logger
}

// NewSessionUseCase - создание нового SessionUseCase
func NewSessionUseCase(
	registry *session.Registry,
	networks NetworkProvider,
	publisher RoutePublisher,
	logger *zap.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		registry:  registry,
		networks:  networks,
		publisher: publisher,
		logger:    logger,
	}
}

// Create начинает новую сессию
func (uc *SessionUseCase) Create(ctx context.Context) dto.SessionResponse {
	s := uc.registry.Create()
	return dto.ConvertSession(s.Snapshot())
}

// Get возвращает состояние сессии
func (uc *SessionUseCase) Get(ctx context.Context, id string) (*dto.SessionResponse, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}
	resp := dto.ConvertSession(s.Snapshot())
	return &resp, nil
}

// SelectDestination выбирает пункт назначения и строит маршрут.
// Без текущего положения и узла по умолчанию возвращается NO_STARTING_POINT,
// а пункт назначения запоминается до первого положения
func (uc *SessionUseCase) SelectDestination(ctx context.Context, id string, req dto.SelectDestinationRequest) (*dto.SessionResponse, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	node, err := uc.node(ctx, req.NodeID)
	if err != nil {
		return nil, err
	}

	route, err := s.SelectDestination(ctx, node)
	if err := uc.handleRoute(ctx, s, &route, err); err != nil {
		return nil, err
	}

	resp := dto.ConvertSession(s.Snapshot())
	return &resp, nil
}

// SetLocation задаёт текущий узел посетителя (например, узел киоска)
func (uc *SessionUseCase) SetLocation(ctx context.Context, id string, req dto.LocationRequest) (*dto.SessionResponse, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	node, err := uc.node(ctx, req.NodeID)
	if err != nil {
		return nil, err
	}

	route, err := s.LocationChanged(ctx, node)
	if err := uc.handleRoute(ctx, s, route, err); err != nil {
		return nil, err
	}

	resp := dto.ConvertSession(s.Snapshot())
	return &resp, nil
}

// ObservePosition обрабатывает GPS-координаты посетителя
func (uc *SessionUseCase) ObservePosition(ctx context.Context, id string, req dto.PositionRequest) (*dto.PositionResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	changed, route, err := s.ObservePosition(ctx, req.Lon, req.Lat)
	if err := uc.handleRoute(ctx, s, route, err); err != nil {
		return nil, err
	}

	snap := dto.ConvertSession(s.Snapshot())
	return &dto.PositionResponse{
		Changed:       changed,
		OutsideCampus: snap.OutsideCampus,
		Session:       snap,
	}, nil
}

// ClearRoute сбрасывает маршрут и пункт назначения
func (uc *SessionUseCase) ClearRoute(ctx context.Context, id string) (*dto.SessionResponse, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	s.Clear()

	resp := dto.ConvertSession(s.Snapshot())
	return &resp, nil
}

// handleRoute publishes a freshly computed route and maps errors. A stale
// result is not an error: the newer request owns the session state.
func (uc *SessionUseCase) handleRoute(ctx context.Context, s *session.Session, route *domain.Route, err error) error {
	if err != nil {
		if stderrors.Is(err, session.ErrStaleRoute) {
			return nil
		}
		uc.logger.Info("Session route failed",
			zap.String("session_id", s.ID().String()),
			zap.Error(err))
		return mapError(err, nil)
	}

	if route != nil && !route.Empty() && uc.publisher != nil {
		uc.publisher.PublishComputed(ctx, s.ID().String(), *route)
	}
	return nil
}

func (uc *SessionUseCase) session(id string) (*session.Session, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.ErrSessionNotFound.WithDetails(map[string]interface{}{"session_id": id})
	}

	s, err := uc.registry.Get(parsed)
	if err != nil {
		return nil, mapError(err, map[string]interface{}{"session_id": id})
	}
	return s, nil
}

func (uc *SessionUseCase) node(ctx context.Context, id string) (domain.Node, error) {
	network, err := uc.networks.Network(ctx)
	if err != nil {
		return domain.Node{}, err
	}

	resolved, ok := network.ResolveNodeID(id)
	if !ok {
		return domain.Node{}, errors.ErrNodeNotFound.WithDetails(map[string]interface{}{"node_id": id})
	}
	node, _ := network.Node(resolved)
	return node, nil
}
