package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/pt-omnibox/internal"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantType string
		wantExt  string
		wantErr  bool
	}{
		{
			name:     "jsonl format",
			format:   "jsonl",
			wantType: "JSONLExporter",
			wantExt:  "jsonl",
			wantErr:  false,
		},
		{
			name:     "markdown format",
			format:   "md",
			wantType: "MarkdownExporter",
			wantExt:  "md",
			wantErr:  false,
		},
		{
			name:     "markdown format long",
			format:   "markdown",
			wantType: "MarkdownExporter",
			wantExt:  "md",
			wantErr:  false,
		},
		{
			name:     "yaml format",
			format:   "yaml",
			wantType: "YAMLExporter",
			wantExt:  "yaml",
			wantErr:  false,
		},
		{
			name:     "json format",
			format:   "json",
			wantType: "JSONExporter",
			wantExt:  "json",
			wantErr:  false,
		},
		{
			name:     "unsupported format",
			format:   "xml",
			wantType: "",
			wantExt:  "",
			wantErr:  true,
		},
		{
			name:     "empty format",
			format:   "",
			wantType: "",
			wantExt:  "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewExporter() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if exporter == nil {
					t.Error("NewExporter() returned nil exporter")
					return
				}

				// Verify extension
				if got := exporter.Extension(); got != tt.wantExt {
					t.Errorf("Exporter.Extension() = %v, want %v", got, tt.wantExt)
				}

				// Verify type (rough check)
				switch tt.wantType {
				case "JSONLExporter":
					if _, ok := exporter.(*JSONLExporter); !ok {
						t.Errorf("Expected JSONLExporter, got %T", exporter)
					}
				case "MarkdownExporter":
					if _, ok := exporter.(*MarkdownExporter); !ok {
						t.Errorf("Expected MarkdownExporter, got %T", exporter)
					}
				case "YAMLExporter":
					if _, ok := exporter.(*YAMLExporter); !ok {
						t.Errorf("Expected YAMLExporter, got %T", exporter)
					}
				case "JSONExporter":
					if _, ok := exporter.(*JSONExporter); !ok {
						t.Errorf("Expected JSONExporter, got %T", exporter)
					}
				}
			} else {
				if exporter != nil {
					t.Errorf("NewExporter() returned exporter %T, want nil", exporter)
				}
			}
		})
	}
}

func sampleSearches() []internal.SavedSearch {
	return []internal.SavedSearch{
		{ID: 1, Name: "Errors", Query: "error OR fatal", GroupID: 10, GroupName: "Prod", HTMLSearchURL: "https://x/1"},
		{ID: 2, Name: "Slow requests", Query: "duration>500", GroupID: 10, GroupName: "Prod", HTMLSearchURL: "https://x/2"},
		{Name: "Deploys", GroupName: "Staging", HTMLSearchURL: "https://x/3"},
	}
}

func TestWriteTo_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searches.jsonl")

	if err := WriteTo(&JSONLExporter{}, sampleSearches(), nil, path); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 3 {
		t.Errorf("expected 3 lines, got %d", got)
	}
}

func TestWriteTo_Writer(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTo(&JSONExporter{}, sampleSearches(), &buf, ""); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Slow requests") {
		t.Errorf("output missing saved search: %s", buf.String())
	}
}

func TestWriteTo_Errors(t *testing.T) {
	t.Run("unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.json")
		err := WriteTo(&JSONExporter{}, sampleSearches(), nil, path)

		var exportErr *internal.ExportError
		if !errors.As(err, &exportErr) {
			t.Fatalf("expected *internal.ExportError, got %v", err)
		}
		if exportErr.Path != path || exportErr.Format != "json" {
			t.Errorf("unexpected error fields: %+v", exportErr)
		}
	})

	t.Run("failing writer", func(t *testing.T) {
		err := WriteTo(&MarkdownExporter{}, sampleSearches(), failingWriter{}, "")

		var exportErr *internal.ExportError
		if !errors.As(err, &exportErr) {
			t.Fatalf("expected *internal.ExportError, got %v", err)
		}
		if exportErr.Format != "md" {
			t.Errorf("Format = %q, want md", exportErr.Format)
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
