package exporter

import (
	"errors"
	"fmt"
	"strings"

	predictionio "github.com/rajanesh/predictionio-sdk-go"
)

// Format selects how events are laid out in an export file.
type Format string

const (
	// FormatJSON writes one JSON event per line, the layout `pio import` reads.
	FormatJSON Format = "json"
	// FormatMsgpack writes a stream of msgpack-encoded events.
	FormatMsgpack Format = "msgpack"
)

var (
	// ErrExporterClosed is returned by Write after Close.
	ErrExporterClosed = errors.New("exporter: closed")
	// ErrNilEvent is returned when Write is given a nil event.
	ErrNilEvent = errors.New("exporter: nil event")
)

// ParseFormat converts a case-insensitive format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("exporter: unknown format %q", s)
}

// Exporter is an interface for event sinks.
// Implement this interface to write events somewhere other than a local file.
type Exporter interface {
	// Write encodes and stores a single event.
	Write(event *predictionio.Event) error

	// Close flushes pending output and releases resources.
	Close() error
}

// NoOpExporter is an exporter that discards events.
// Useful when exporting is switched off by configuration.
type NoOpExporter struct{}

var _ Exporter = NoOpExporter{}

// Write does nothing and always returns nil.
func (NoOpExporter) Write(*predictionio.Event) error {
	return nil
}

// Close does nothing and always returns nil.
func (NoOpExporter) Close() error {
	return nil
}

// encode renders one record of the export stream.
func encode(format Format, event *predictionio.Event) ([]byte, error) {
	switch format {
	case FormatMsgpack:
		return event.ToMsgpack()
	case FormatJSON:
		data, err := event.MarshalJSON()
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("exporter: unknown format %q", format)
}
