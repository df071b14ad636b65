package worker

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// BaseWorker содержит общую логику воркеров: имя, consumer group,
// канал остановки и счётчики сообщений
type BaseWorker struct {
	name          string
	stream        string
	consumerGroup string
	logger        *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool

	processed atomic.Int64
	failed    atomic.Int64
	skipped   atomic.Int64
}

// NewBaseWorker создает BaseWorker для чтения stream через consumerGroup
func NewBaseWorker(name, stream, consumerGroup string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:          name,
		stream:        stream,
		consumerGroup: consumerGroup,
		logger:        logger.With(zap.String("worker", name)),
		stopChan:      make(chan struct{}),
	}
}

// Name возвращает имя воркера
func (w *BaseWorker) Name() string {
	return w.name
}

// Stream возвращает имя читаемого стрима
func (w *BaseWorker) Stream() string {
	return w.stream
}

// Stop закрывает канал остановки. Повторный вызов ничего не делает
func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping worker", zap.String("stream", w.stream))
		w.stopped.Store(true)
		close(w.stopChan)
	})
	return nil
}

// IsStopped проверяет, остановлен ли воркер
func (w *BaseWorker) IsStopped() bool {
	return w.stopped.Load()
}

// StopChan возвращает канал остановки
func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}

// ConsumerGroup возвращает имя consumer group
func (w *BaseWorker) ConsumerGroup() string {
	return w.consumerGroup
}

// Logger возвращает логгер с полем worker
func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}

// MarkProcessed учитывает успешно обработанное сообщение
func (w *BaseWorker) MarkProcessed() { w.processed.Add(1) }

// MarkFailed учитывает сообщение, обработанное с ошибкой
func (w *BaseWorker) MarkFailed() { w.failed.Add(1) }

// MarkSkipped учитывает битое сообщение
func (w *BaseWorker) MarkSkipped() { w.skipped.Add(1) }

// Stats возвращает текущие счётчики
func (w *BaseWorker) Stats() Stats {
	return Stats{
		Processed: w.processed.Load(),
		Failed:    w.failed.Load(),
		Skipped:   w.skipped.Load(),
	}
}
