package logger

import (
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
)

// NoopLogger discards everything. Used in tests and when logging is disabled.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

// SetLevel sets the minimum log level to output
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

// Debug discards debug messages
func (l *NoopLogger) Debug(message string, fields map[string]any) {}

// Info discards informational messages
func (l *NoopLogger) Info(message string, fields map[string]any) {}

// Warn discards warning messages
func (l *NoopLogger) Warn(message string, fields map[string]any) {}

// Error discards error messages
func (l *NoopLogger) Error(message string, fields map[string]any) {}

// Flush is a no-op
func (l *NoopLogger) Flush() error {
	return nil
}
