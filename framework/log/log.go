// Package log provides the host's structured logger.
package log

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with event helpers the host and field plugins share.
type Logger struct {
	*zap.Logger
}

// New builds a logger for env at the given level. The local environment gets
// zap's console encoder, everything else JSON.
func New(env, level string) *Logger {
	var cfg zap.Config
	if strings.EqualFold(env, "local") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := cfg.Build()
	if err != nil {
		return Nop()
	}
	return &Logger{Logger: logger}
}

// Wrap adopts an existing zap logger, e.g. zaptest's in tests.
func Wrap(l *zap.Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{Logger: l}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Field returns a logger scoped to one field handle.
func (l *Logger) Field(handle string) *Logger {
	return &Logger{Logger: l.With(zap.String("field", handle))}
}

// DecodeFailure records stored field data that could not be decoded.
func (l *Logger) DecodeFailure(handle string, stored string, err error) {
	l.Warn("field_decode_failed",
		zap.String("field", handle),
		zap.Int("stored_bytes", len(stored)),
		zap.Error(err),
	)
}

// HTTPRequest logs an HTTP request.
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64) {
	l.Info("http_request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Float64("latency_ms", latencyMs),
	)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
