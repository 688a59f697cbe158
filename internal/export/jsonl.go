package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/pt-omnibox/internal"
)

// JSONLExporter exports saved searches in JSONL format (one search per line)
type JSONLExporter struct{}

// Export exports saved searches to JSONL format
func (e *JSONLExporter) Export(searches []internal.SavedSearch, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, s := range searches {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode saved search %q: %w", s.Name, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
