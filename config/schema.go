package config

// Config is the top-level YAML structure.
type Config struct {
	Exporter ExporterConfig `yaml:"exporter"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ExporterConfig configures a file exporter.
type ExporterConfig struct {
	Path       string `yaml:"path"`
	Format     string `yaml:"format"` // "json" or "msgpack"
	BufferSize int    `yaml:"buffer_size"`
	Append     bool   `yaml:"append"`
}

// LoggingConfig selects the SDK log level.
type LoggingConfig struct {
	Level string `yaml:"level"` // DEBUG, INFO, WARN, ERROR, NONE
}

const (
	DefaultFormat     = "json"
	DefaultBufferSize = 64 * 1024
	DefaultLogLevel   = "WARN"
)
