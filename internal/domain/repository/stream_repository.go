package repository

import (
	"context"
	"time"

	"github.com/campus-navigator/internal/domain"
)

// StreamRepository - запросы маршрутов и события о них поверх Redis Streams
type StreamRepository interface {
	// ConsumeStream читает новые сообщения стрима через consumer group.
	// Канал закрывается при отмене ctx
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// ClaimPending переназначает consumer'у сообщения группы, которые были
	// прочитаны, но не подтверждены дольше minIdle
	ClaimPending(ctx context.Context, stream, group, consumer string, minIdle time.Duration) ([]domain.StreamMessage, error)

	// AckMessage подтверждает обработку сообщения
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// CreateConsumerGroup создаёт consumer group
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream публикует data как JSON в поле "data"
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
