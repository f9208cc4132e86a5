package adapters

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(level LogLevel) (*SlogLoggerAdapter, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLoggerAdapter(slog.New(handler), level), &buf
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{" Warn ", LogLevelWarn, false},
		{"error", LogLevelError, false},
		{"none", LogLevelNone, false},
		{"verbose", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLogLevel_Enables(t *testing.T) {
	if !LogLevelDebug.Enables(LogLevelDebug) {
		t.Error("debug should enable debug")
	}
	if LogLevelWarn.Enables(LogLevelInfo) {
		t.Error("warn should not enable info")
	}
	if !LogLevelWarn.Enables(LogLevelError) {
		t.Error("warn should enable error")
	}
	if LogLevelNone.Enables(LogLevelError) {
		t.Error("none should not enable anything")
	}
	if !LogLevel("bogus").Enables(LogLevelWarn) {
		t.Error("unknown threshold should fall back to warn")
	}
}

func TestSlogLoggerAdapter(t *testing.T) {
	t.Run("should format messages", func(t *testing.T) {
		logger, buf := newTestLogger(LogLevelDebug)
		logger.Debug("exported %d events to %s", 3, "events.json")

		out := buf.String()
		if !strings.Contains(out, "exported 3 events to events.json") {
			t.Errorf("expected formatted message, got %q", out)
		}
		if !strings.Contains(out, "component=predictionio") {
			t.Errorf("expected component attribute, got %q", out)
		}
		if !strings.Contains(out, "level=DEBUG") {
			t.Errorf("expected debug level, got %q", out)
		}
	})

	t.Run("should leave messages without args untouched", func(t *testing.T) {
		logger, buf := newTestLogger(LogLevelDebug)
		logger.Info("100% done")

		if !strings.Contains(buf.String(), "100% done") {
			t.Errorf("expected raw message, got %q", buf.String())
		}
	})

	t.Run("should respect log levels", func(t *testing.T) {
		logger, buf := newTestLogger(LogLevelError)
		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		out := buf.String()
		for _, dropped := range []string{"debug message", "info message", "warn message"} {
			if strings.Contains(out, dropped) {
				t.Errorf("expected %q to be dropped", dropped)
			}
		}
		if !strings.Contains(out, "error message") {
			t.Error("expected error message to be logged")
		}
	})

	t.Run("should handle none level", func(t *testing.T) {
		logger, buf := newTestLogger(LogLevelNone)
		logger.Error("error message")

		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("should default to slog default logger", func(t *testing.T) {
		logger := NewSlogLoggerAdapter(nil, LogLevelNone)
		if logger.logger == nil {
			t.Fatal("expected a logger")
		}
	})
}

func TestNoOpLoggerAdapter(t *testing.T) {
	var logger LoggerAdapter = NoOpLoggerAdapter{}
	logger.Debug("debug %s", "x")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
}
