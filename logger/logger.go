package logger

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MaxEntries is how many recent entries GetLogs can return.
const MaxEntries = 500

var (
	L = zap.NewNop()

	recent = &ring{capacity: MaxEntries}
)

type LogEntry struct {
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Init builds the process logger and makes it the target of the package
// level helpers. format is json or console.
func Init(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = format
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "console" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := config.Build(zap.Hooks(recent.record))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	L = l
	return l, nil
}

func Info(message string, args ...interface{}) {
	L.Sugar().Infof(message, args...)
}

func Warn(message string, args ...interface{}) {
	L.Sugar().Warnf(message, args...)
}

func Error(message string, args ...interface{}) {
	L.Sugar().Errorf(message, args...)
}

func Debug(message string, args ...interface{}) {
	L.Sugar().Debugf(message, args...)
}

// GetLogs returns up to limit recent entries, newest first.
func GetLogs(limit int) []LogEntry {
	return recent.latest(limit)
}

type ring struct {
	mu       sync.Mutex
	capacity int
	entries  []LogEntry
}

func (r *ring) record(e zapcore.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, LogEntry{
		Level:     e.Level.CapitalString(),
		Message:   e.Message,
		CreatedAt: e.Time,
	})
	if over := len(r.entries) - r.capacity; over > 0 {
		r.entries = append(r.entries[:0], r.entries[over:]...)
	}
	return nil
}

func (r *ring) latest(limit int) []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]LogEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out
}
