package config

import (
	"fmt"
	"strings"

	"github.com/rajanesh/predictionio-sdk-go/adapters"
)

// Validate checks the config for:
//   - a non-empty exporter path
//   - a known exporter format
//   - a positive buffer size
//   - a known log level
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Exporter.Path == "" {
		errs = append(errs, "exporter.path is required")
	}
	switch cfg.Exporter.Format {
	case "json", "msgpack":
	default:
		errs = append(errs, fmt.Sprintf("exporter.format %q must be json or msgpack", cfg.Exporter.Format))
	}
	if cfg.Exporter.BufferSize < 0 {
		errs = append(errs, fmt.Sprintf("exporter.buffer_size %d must not be negative", cfg.Exporter.BufferSize))
	}
	if _, err := adapters.ParseLogLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, fmt.Sprintf("logging.level: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
