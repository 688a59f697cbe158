package export

import (
	"fmt"
	"io"
	"os"

	"github.com/iksnae/pt-omnibox/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(searches []internal.SavedSearch, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: jsonl, md, yaml, json)", format)
	}
}

// WriteTo exports searches to w, or to the file at path when path is set.
// Failures are reported as *internal.ExportError.
func WriteTo(e Exporter, searches []internal.SavedSearch, w io.Writer, path string) (err error) {
	if path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return &internal.ExportError{Format: e.Extension(), Path: path, Err: createErr}
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = &internal.ExportError{Format: e.Extension(), Path: path, Err: closeErr}
			}
		}()
		w = f
	}

	if exportErr := e.Export(searches, w); exportErr != nil {
		return &internal.ExportError{Format: e.Extension(), Path: path, Err: exportErr}
	}
	return nil
}
