package core

// LogLevel is the severity of a log line
type LogLevel int

const (
	// LogLevelDebug traces internal steps, noisy outside development
	LogLevelDebug LogLevel = iota
	// LogLevelInfo records normal operations
	LogLevelInfo
	// LogLevelWarn flags recoverable anomalies
	LogLevelWarn
	// LogLevelError flags failures that abort an operation
	LogLevelError
)

// Logger is the structured logging port used throughout the domain.
// Fields carry the structured context; the message stays constant per call site.
type Logger interface {
	// SetLevel sets the minimum level that gets written
	SetLevel(level LogLevel)
	// GetLevel returns the current minimum level
	GetLevel() LogLevel
	// Debug logs at debug level
	Debug(message string, fields map[string]any)
	// Info logs at info level
	Info(message string, fields map[string]any)
	// Warn logs at warn level
	Warn(message string, fields map[string]any)
	// Error logs at error level
	Error(message string, fields map[string]any)
	// Flush writes out any buffered log lines, called on shutdown
	Flush() error
}
