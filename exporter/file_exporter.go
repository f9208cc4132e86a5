package exporter

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sync"

	predictionio "github.com/rajanesh/predictionio-sdk-go"
	"github.com/rajanesh/predictionio-sdk-go/adapters"
	"github.com/rajanesh/predictionio-sdk-go/config"
	"github.com/rajanesh/predictionio-sdk-go/internal/metrics"
)

const defaultBufferSize = 64 * 1024

// FileExporter writes events to a local file. It is safe for concurrent use.
type FileExporter struct {
	path   string
	format Format
	logger adapters.LoggerAdapter

	mu     sync.Mutex
	file   *os.File
	w      *bufio.Writer
	count  int
	closed bool
}

// Ensure FileExporter implements Exporter interface
var _ Exporter = (*FileExporter)(nil)

type options struct {
	format     Format
	bufferSize int
	logger     adapters.LoggerAdapter
	append     bool
}

// Option configures a FileExporter.
type Option func(*options)

// WithFormat selects the output format. The default is FormatJSON.
func WithFormat(format Format) Option {
	return func(o *options) { o.format = format }
}

// WithBufferSize sets the write buffer size in bytes.
func WithBufferSize(size int) Option {
	return func(o *options) { o.bufferSize = size }
}

// WithLogger sets the logger adapter.
func WithLogger(logger adapters.LoggerAdapter) Option {
	return func(o *options) { o.logger = logger }
}

// WithAppend makes the exporter append to an existing file instead of
// truncating it.
func WithAppend(enabled bool) Option {
	return func(o *options) { o.append = enabled }
}

// NewFileExporter opens path for writing.
//
// Parameters:
//   - path: File that receives the events; it is created if missing
//   - opts: Format, buffering, logging and append behaviour
func NewFileExporter(path string, opts ...Option) (*FileExporter, error) {
	o := options{format: FormatJSON, bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = adapters.NewSlogLoggerAdapter(nil, adapters.LogLevelWarn)
	}
	if _, err := ParseFormat(string(o.format)); err != nil {
		return nil, err
	}
	if o.bufferSize <= 0 {
		o.bufferSize = defaultBufferSize
	}

	flags := os.O_CREATE | os.O_WRONLY
	if o.append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("exporter: open %s: %w", path, err)
	}

	metrics.OpenExporters.Inc()
	o.logger.Info("Exporting %s events to %s", o.format, path)

	return &FileExporter{
		path:   path,
		format: o.format,
		logger: o.logger,
		file:   f,
		w:      bufio.NewWriterSize(f, o.bufferSize),
	}, nil
}

// NewFromConfig creates a FileExporter from the exporter section of a config
// file.
func NewFromConfig(cfg config.ExporterConfig, logger adapters.LoggerAdapter) (*FileExporter, error) {
	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return NewFileExporter(cfg.Path,
		WithFormat(format),
		WithBufferSize(cfg.BufferSize),
		WithAppend(cfg.Append),
		WithLogger(logger),
	)
}

// Write encodes event and appends it to the file. An event that cannot be
// encoded is not written and its *predictionio.EncodingError is returned.
func (x *FileExporter) Write(event *predictionio.Event) error {
	if event == nil {
		return ErrNilEvent
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.closed {
		return ErrExporterClosed
	}

	data, err := encode(x.format, event)
	if err != nil {
		metrics.EncodeFailures.WithLabelValues(string(x.format)).Inc()
		x.logger.Warn("Dropping event %q: %v", event.GetEvent(), err)
		return err
	}
	if _, err := x.w.Write(data); err != nil {
		return fmt.Errorf("exporter: write %s: %w", x.path, err)
	}
	x.count++

	metrics.EventsExported.WithLabelValues(string(x.format)).Inc()
	metrics.BytesWritten.WithLabelValues(string(x.format)).Add(float64(len(data)))
	x.logger.Debug("Exported event %q for %s/%s", event.GetEvent(), event.GetEntityType(), event.GetEntityID())
	return nil
}

// Flush writes buffered events to the file.
func (x *FileExporter) Flush() error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.closed {
		return ErrExporterClosed
	}
	if err := x.w.Flush(); err != nil {
		return fmt.Errorf("exporter: flush %s: %w", x.path, err)
	}
	return nil
}

// Count returns the number of events written so far.
func (x *FileExporter) Count() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.count
}

// Path returns the file being written.
func (x *FileExporter) Path() string {
	return x.path
}

// Close flushes and closes the file. Calling Close more than once is a no-op.
func (x *FileExporter) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.closed {
		return nil
	}
	x.closed = true
	metrics.OpenExporters.Dec()

	flushErr := x.w.Flush()
	closeErr := x.file.Close()
	x.logger.Info("Closed %s after %d events", x.path, x.count)

	if flushErr != nil {
		return fmt.Errorf("exporter: flush %s: %w", x.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("exporter: close %s: %w", x.path, closeErr)
	}
	return nil
}

// Export writes events to path in one go, replacing any existing file.
func Export(path string, events []*predictionio.Event, opts ...Option) error {
	x, err := NewFileExporter(path, append(opts, WithAppend(false))...)
	if err != nil {
		return err
	}
	for _, event := range events {
		if err := x.Write(event); err != nil {
			return errors.Join(err, x.Close())
		}
	}
	return x.Close()
}
