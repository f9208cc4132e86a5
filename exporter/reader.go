package exporter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	predictionio "github.com/rajanesh/predictionio-sdk-go"
)

const maxLineSize = 16 * 1024 * 1024

// ReadFile loads the events of an export file.
// Returns an empty slice if the file doesn't exist.
func ReadFile(path string, format Format) ([]*predictionio.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*predictionio.Event{}, nil
		}
		return nil, fmt.Errorf("exporter: open %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatJSON:
		return readJSONLines(path, f)
	case FormatMsgpack:
		return readMsgpackStream(path, f)
	}
	return nil, fmt.Errorf("exporter: unknown format %q", format)
}

func readJSONLines(path string, r io.Reader) ([]*predictionio.Event, error) {
	events := []*predictionio.Event{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		event, err := predictionio.EventFromJSON(data)
		if err != nil {
			return nil, fmt.Errorf("exporter: %s line %d: %w", path, line, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("exporter: read %s: %w", path, err)
	}
	return events, nil
}

func readMsgpackStream(path string, r io.Reader) ([]*predictionio.Event, error) {
	events := []*predictionio.Event{}
	dec := msgpack.NewDecoder(bufio.NewReader(r))
	dec.UseLooseInterfaceDecoding(true)

	for record := 1; ; record++ {
		if _, err := dec.PeekCode(); err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return nil, fmt.Errorf("exporter: read %s: %w", path, err)
		}
		event := predictionio.NewEvent()
		if err := dec.Decode(event); err != nil {
			return nil, fmt.Errorf("exporter: %s record %d: %w", path, record, &predictionio.DecodingError{Op: "msgpack", Err: err})
		}
		events = append(events, event)
	}
}
