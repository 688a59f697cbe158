package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/pt-omnibox/internal"
)

// JSONExporter exports saved searches as a pretty-printed JSON array
type JSONExporter struct{}

// Export exports saved searches to JSON format
func (e *JSONExporter) Export(searches []internal.SavedSearch, w io.Writer) error {
	if searches == nil {
		searches = []internal.SavedSearch{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(searches)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
