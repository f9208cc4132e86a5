package adapters

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogLoggerAdapter implements LoggerAdapter on top of log/slog. Messages
// are printf-formatted and tagged with component=predictionio.
type SlogLoggerAdapter struct {
	logger *slog.Logger
	level  LogLevel
}

var _ LoggerAdapter = (*SlogLoggerAdapter)(nil)

// NewSlogLoggerAdapter creates a logger that drops messages below level.
// A nil logger means slog.Default().
func NewSlogLoggerAdapter(logger *slog.Logger, level LogLevel) *SlogLoggerAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLoggerAdapter{
		logger: logger.With("component", "predictionio"),
		level:  level,
	}
}

func (s *SlogLoggerAdapter) Debug(message string, args ...any) {
	s.log(LogLevelDebug, slog.LevelDebug, message, args)
}

func (s *SlogLoggerAdapter) Info(message string, args ...any) {
	s.log(LogLevelInfo, slog.LevelInfo, message, args)
}

func (s *SlogLoggerAdapter) Warn(message string, args ...any) {
	s.log(LogLevelWarn, slog.LevelWarn, message, args)
}

func (s *SlogLoggerAdapter) Error(message string, args ...any) {
	s.log(LogLevelError, slog.LevelError, message, args)
}

func (s *SlogLoggerAdapter) log(level LogLevel, slogLevel slog.Level, message string, args []any) {
	if !s.level.Enables(level) {
		return
	}
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	s.logger.Log(context.Background(), slogLevel, message)
}
