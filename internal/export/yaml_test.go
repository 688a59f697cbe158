package export

import (
	"bytes"
	"testing"

	"github.com/iksnae/pt-omnibox/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	tests := []struct {
		name     string
		searches []internal.SavedSearch
		wantLen  int
	}{
		{name: "saved searches", searches: sampleSearches(), wantLen: 3},
		{name: "nil list", searches: nil, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&YAMLExporter{}).Export(tt.searches, &buf); err != nil {
				t.Fatalf("YAMLExporter.Export() error = %v", err)
			}

			var got []internal.SavedSearch
			if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("Output is not valid YAML: %v\nOutput: %s", err, buf.String())
			}
			if len(got) != tt.wantLen {
				t.Fatalf("got %d searches, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].Query != "error OR fatal" {
				t.Errorf("first query = %q", got[0].Query)
			}
		})
	}
}

func TestYAMLExporter_Extension(t *testing.T) {
	if got := (&YAMLExporter{}).Extension(); got != "yaml" {
		t.Errorf("Extension() = %q, want yaml", got)
	}
}
