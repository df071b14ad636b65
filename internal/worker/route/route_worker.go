package route

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/domain/repository"
	"github.com/campus-navigator/internal/pkg/errors"
	"github.com/campus-navigator/internal/usecase/dto"
	"github.com/campus-navigator/internal/worker"
)

const (
	retryBackoff = 200 * time.Millisecond

	// DefaultClaimMinIdle - через сколько неподтверждённый запрос считается
	// брошенным и забирается этим воркером
	DefaultClaimMinIdle = 30 * time.Second
)

// RouteFinder строит маршрут по запросу
type RouteFinder interface {
	FindRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error)
}

// RouteRequestWorker обрабатывает запросы маршрутов из stream:route:request
// и публикует результаты в stream:route:done
type RouteRequestWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	finder       RouteFinder
	consumerName string
	maxRetries   int
	claimMinIdle time.Duration
}

// Option настраивает RouteRequestWorker
type Option func(*RouteRequestWorker)

// WithClaimMinIdle sets how long a request may stay unacknowledged before the
// worker claims it. The pending list is also scanned at this interval.
func WithClaimMinIdle(d time.Duration) Option {
	return func(w *RouteRequestWorker) {
		if d > 0 {
			w.claimMinIdle = d
		}
	}
}

// NewRouteRequestWorker создает новый RouteRequestWorker
func NewRouteRequestWorker(
	streamRepo repository.StreamRepository,
	finder RouteFinder,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
	opts ...Option,
) *RouteRequestWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	w := &RouteRequestWorker{
		BaseWorker:   worker.NewBaseWorker("route-request", domain.StreamRouteRequest, consumerGroup, logger),
		streamRepo:   streamRepo,
		finder:       finder,
		consumerName: consumerName,
		maxRetries:   maxRetries,
		claimMinIdle: DefaultClaimMinIdle,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start запускает воркер. Возвращается после Stop, отмены ctx или закрытия стрима
func (w *RouteRequestWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RouteRequestWorker",
		zap.String("stream", w.Stream()),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.Stream(), w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(consumeCtx, w.Stream(), w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	// запросы, брошенные прошлыми запусками или не опубликованные этим
	w.reclaim(consumeCtx)
	ticker := time.NewTicker(w.claimMinIdle)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream closed")
				return nil
			}
			w.handleMessage(consumeCtx, msg)

		case <-ticker.C:
			w.reclaim(consumeCtx)
		}
	}
}

// reclaim забирает из pending-списка группы запросы, которые простаивают
// дольше claimMinIdle, и обрабатывает их заново
func (w *RouteRequestWorker) reclaim(ctx context.Context) {
	msgs, err := w.streamRepo.ClaimPending(ctx, w.Stream(), w.ConsumerGroup(), w.consumerName, w.claimMinIdle)
	if err != nil {
		w.Logger().Warn("Failed to claim pending requests", zap.Error(err))
	}
	for _, msg := range msgs {
		if ctx.Err() != nil {
			return
		}
		w.handleMessage(ctx, msg)
	}
}

// handleMessage обрабатывает одно сообщение. Битые сообщения подтверждаются
// и пропускаются. Если результат не удалось опубликовать, сообщение не
// подтверждается: его заберёт следующий проход reclaim после claimMinIdle
func (w *RouteRequestWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	var event domain.RouteRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil || !event.Valid() {
		logger.Warn("Invalid route request, skipping", zap.Error(err))
		w.MarkSkipped()
		w.ack(ctx, msg.ID)
		return
	}

	done := domain.RouteDoneEvent{
		RequestID:   event.RequestID,
		StartNodeID: event.StartNodeID,
		EndNodeID:   event.EndNodeID,
	}

	resp, err := w.findWithRetry(ctx, dto.RouteRequest{
		StartNodeID: event.StartNodeID,
		EndNodeID:   event.EndNodeID,
		RouteInfo:   event.RouteInfo,
		Metadata:    event.Metadata,
	})
	if err != nil {
		done.Error = errorCode(err)
		logger.Info("Route request failed",
			zap.String("request_id", event.RequestID.String()),
			zap.String("error", done.Error))
	} else {
		done.Route = &resp.Route
	}

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamRouteDone, done); err != nil {
		logger.Error("Failed to publish done event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		return
	}

	if done.Error != "" {
		w.MarkFailed()
	} else {
		w.MarkProcessed()
	}
	w.ack(ctx, msg.ID)
}

// findWithRetry retries errors that may go away: the graph still loading or
// anything that is not a catalogued API error.
func (w *RouteRequestWorker) findWithRetry(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * retryBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := w.finder.FindRoute(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) {
			break
		}
		w.Logger().Debug("Retrying route request",
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}
	return nil, lastErr
}

func (w *RouteRequestWorker) ack(ctx context.Context, id string) {
	if err := w.streamRepo.AckMessage(ctx, w.Stream(), w.ConsumerGroup(), id); err != nil {
		w.Logger().Warn("Failed to ack message", zap.String("message_id", id), zap.Error(err))
	}
}

func retryable(err error) bool {
	if stderrors.Is(err, errors.ErrGraphNotReady) {
		return true
	}
	var appErr *errors.AppError
	return !stderrors.As(err, &appErr)
}

func errorCode(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return errors.ErrInternalServer.Code
}
