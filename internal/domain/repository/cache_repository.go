package repository

import (
	"context"
	"time"

	"github.com/campus-navigator/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetRoute получает маршрут, построенный на заданной версии графа.
	// Промах кеша возвращает nil без ошибки
	GetRoute(ctx context.Context, graphVersion, startID, endID string) (*domain.RouteSummary, error)

	// SetRoute сохраняет маршрут для версии графа
	SetRoute(ctx context.Context, graphVersion string, route *domain.RouteSummary, ttl time.Duration) error
}
