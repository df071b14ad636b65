package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// DefaultRingCapacity - сколько последних строк лога держим для отладки
const DefaultRingCapacity = 50

// Ring is a fixed-size buffer of the most recent log lines. It implements
// zapcore.WriteSyncer so it can back a zap core directly.
type Ring struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
}

// NewRing creates a ring holding at most capacity lines. A non-positive
// capacity uses DefaultRingCapacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultRingCapacity
	}
	return &Ring{lines: make([]string, capacity)}
}

// Write stores one encoded entry. Trailing newlines are trimmed.
func (r *Ring) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")

	r.mu.Lock()
	r.lines[r.next] = line
	r.next = (r.next + 1) % len(r.lines)
	if r.next == 0 {
		r.full = true
	}
	r.mu.Unlock()

	return len(p), nil
}

// Sync is a no-op.
func (r *Ring) Sync() error { return nil }

// Lines returns the buffered lines, oldest first.
func (r *Ring) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		return append([]string(nil), r.lines[:r.next]...)
	}
	out := make([]string, 0, len(r.lines))
	out = append(out, r.lines[r.next:]...)
	out = append(out, r.lines[:r.next]...)
	return out
}

// Len returns the number of buffered lines.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return len(r.lines)
	}
	return r.next
}

// Capacity returns the maximum number of lines kept.
func (r *Ring) Capacity() int {
	return len(r.lines)
}

// NewRingCore returns a zap core writing "[15:04:05] LEVEL message {fields}"
// lines into ring.
func NewRingCore(ring *Ring, level zapcore.LevelEnabler) zapcore.Core {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout("[15:04:05]"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), ring, level)
}
