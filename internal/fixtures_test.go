package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// writeSettings creates a settings database at path holding values
func writeSettings(t *testing.T, path string, values map[string]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := OpenWritableDatabase(path)
	if err != nil {
		t.Fatalf("Failed to open settings database: %v", err)
	}
	defer db.Close()

	for k, v := range values {
		if err := PutSetting(context.Background(), db, k, v); err != nil {
			t.Fatalf("Failed to insert setting %s: %v", k, err)
		}
	}
}
