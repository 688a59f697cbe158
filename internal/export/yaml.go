package export

import (
	"io"

	"github.com/iksnae/pt-omnibox/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports saved searches in YAML format
type YAMLExporter struct{}

// Export exports saved searches to YAML format
func (e *YAMLExporter) Export(searches []internal.SavedSearch, w io.Writer) error {
	if searches == nil {
		searches = []internal.SavedSearch{}
	}
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(searches)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
