package exporter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	predictionio "github.com/rajanesh/predictionio-sdk-go"
)

func TestReadFile_NonExistent(t *testing.T) {
	loaded, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"), FormatJSON)
	if err != nil {
		t.Fatalf("expected no error for nonexistent file: %v", err)
	}
	if loaded == nil || len(loaded) != 0 {
		t.Fatal("expected empty slice for nonexistent file")
	}
}

func TestReadFile_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	data := "\n" +
		`{"event":"view","entityType":"user","entityId":"u1"}` + "\n\n" +
		`{"event":"buy","entityType":"user","entityId":"u2","properties":{"price":9.5}}` + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	loaded, err := ReadFile(path, FormatJSON)
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}
	if len(loaded) != 2 || loaded[0].GetEvent() != "view" || loaded[1].GetEvent() != "buy" {
		t.Fatal("loaded events do not match file")
	}
}

func TestReadFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	os.WriteFile(path, []byte(`{"event":"ok"}`+"\ninvalid json\n"), 0644)

	_, err := ReadFile(path, FormatJSON)
	var decErr *predictionio.DecodingError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodingError, got %v", err)
	}
}

func TestReadFile_TrailingGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	os.WriteFile(path, []byte(`{"event":"ok"} {"event":"also"}`+"\n"), 0644)

	_, err := ReadFile(path, FormatJSON)
	var decErr *predictionio.DecodingError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodingError, got %v", err)
	}
}

func TestReadFile_InvalidMsgpack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.msgpack")
	os.WriteFile(path, []byte{0x85, 0xa5}, 0644)

	_, err := ReadFile(path, FormatMsgpack)
	var decErr *predictionio.DecodingError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodingError, got %v", err)
	}
}

func TestReadFile_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	os.WriteFile(path, []byte("{}"), 0644)

	if _, err := ReadFile(path, Format("csv")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"MsgPack", FormatMsgpack, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}
