package adapters

import (
	"fmt"
	"strings"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelNone  LogLevel = "NONE"
)

var levelRank = map[LogLevel]int{
	LogLevelDebug: 0,
	LogLevelInfo:  1,
	LogLevelWarn:  2,
	LogLevelError: 3,
	LogLevelNone:  4,
}

// ParseLogLevel converts a case-insensitive level name into a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	level := LogLevel(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := levelRank[level]; !ok {
		return "", fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// Enables reports whether messages at msg are emitted when the threshold is l.
func (l LogLevel) Enables(msg LogLevel) bool {
	threshold, ok := levelRank[l]
	if !ok {
		threshold = levelRank[LogLevelWarn]
	}
	return levelRank[msg] >= threshold && msg != LogLevelNone
}

// LoggerAdapter is an interface for logging.
// Implement this interface to use custom loggers.
type LoggerAdapter interface {
	// Debug logs a debug message
	Debug(message string, args ...any)
	// Info logs an info message
	Info(message string, args ...any)
	// Warn logs a warning message
	Warn(message string, args ...any)
	// Error logs an error message
	Error(message string, args ...any)
}

// NoOpLoggerAdapter discards everything.
type NoOpLoggerAdapter struct{}

var _ LoggerAdapter = NoOpLoggerAdapter{}

func (NoOpLoggerAdapter) Debug(string, ...any) {}
func (NoOpLoggerAdapter) Info(string, ...any)  {}
func (NoOpLoggerAdapter) Warn(string, ...any)  {}
func (NoOpLoggerAdapter) Error(string, ...any) {}
