package worker

import (
	"context"
)

// Worker интерфейс для всех воркеров стримов
type Worker interface {
	// Start запускает воркер и блокируется до Stop или отмены ctx
	Start(ctx context.Context) error

	// Stop останавливает воркер
	Stop() error

	// Name возвращает имя воркера
	Name() string

	// Stats возвращает счётчики обработанных сообщений
	Stats() Stats
}

// Stats - счётчики сообщений воркера
type Stats struct {
	Processed int64 `json:"processed"`
	Failed    int64 `json:"failed"`
	Skipped   int64 `json:"skipped"`
}
