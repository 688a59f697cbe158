package internal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/pt-omnibox/testutil"
)

func TestSettingsStore_GetToken(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		key     string
		want    string
		wantErr bool
	}{
		{
			name: "configured token",
			setup: func(t *testing.T) string {
				p := filepath.Join(testutil.CreateTempDir(t), "settings.db")
				writeSettings(t, p, map[string]string{DefaultTokenKey: "abc123"})
				return p
			},
			want: "abc123",
		},
		{
			name: "custom key",
			setup: func(t *testing.T) string {
				p := filepath.Join(testutil.CreateTempDir(t), "settings.db")
				writeSettings(t, p, map[string]string{"team_token": "t-1"})
				return p
			},
			key:  "team_token",
			want: "t-1",
		},
		{
			name: "missing key is not an error",
			setup: func(t *testing.T) string {
				p := filepath.Join(testutil.CreateTempDir(t), "settings.db")
				writeSettings(t, p, map[string]string{"other": "x"})
				return p
			},
			want: "",
		},
		{
			name: "missing store is not an error",
			setup: func(t *testing.T) string {
				return filepath.Join(testutil.CreateTempDir(t), "absent.db")
			},
			want: "",
		},
		{
			name: "corrupt store is an error",
			setup: func(t *testing.T) string {
				return testutil.WriteFile(t, testutil.CreateTempDir(t), "settings.db", []byte(strings.Repeat("not a database at all, just text\n", 64)))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewSettingsStore(tt.setup(t), tt.key)
			got, err := store.GetToken(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var se *SettingsError
				if !errors.As(err, &se) {
					t.Errorf("GetToken() error should be *SettingsError, got %T", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("GetToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSettingsStore_DoesNotMutate(t *testing.T) {
	p := filepath.Join(testutil.CreateTempDir(t), "settings.db")
	writeSettings(t, p, map[string]string{DefaultTokenKey: "abc"})
	before, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}

	store := NewSettingsStore(p, "")
	for i := 0; i < 3; i++ {
		if _, err := store.GetToken(context.Background()); err != nil {
			t.Fatalf("GetToken() error = %v", err)
		}
	}

	after, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if after.Size() != before.Size() {
		t.Errorf("settings file changed size: %d -> %d", before.Size(), after.Size())
	}
}

func TestSettingsStore_Keys(t *testing.T) {
	ctx := context.Background()

	t.Run("missing store", func(t *testing.T) {
		store := NewSettingsStore(filepath.Join(testutil.CreateTempDir(t), "absent.db"), "")
		keys, err := store.Keys(ctx)
		if err != nil || len(keys) != 0 {
			t.Errorf("Keys() = (%v, %v), want no keys", keys, err)
		}
	})

	t.Run("keys in order without values", func(t *testing.T) {
		p := filepath.Join(testutil.CreateTempDir(t), "settings.db")
		writeSettings(t, p, map[string]string{DefaultTokenKey: "abc", "browser": "firefox"})

		keys, err := NewSettingsStore(p, "").Keys(ctx)
		if err != nil {
			t.Fatalf("Keys() error = %v", err)
		}
		want := []string{"browser", DefaultTokenKey}
		if len(keys) != len(want) || keys[0] != want[0] || keys[1] != want[1] {
			t.Errorf("Keys() = %v, want %v", keys, want)
		}
	})

	t.Run("corrupt store", func(t *testing.T) {
		p := testutil.WriteFile(t, testutil.CreateTempDir(t), "settings.db", []byte(strings.Repeat("not a database at all, just text\n", 64)))
		_, err := NewSettingsStore(p, "").Keys(ctx)
		var se *SettingsError
		if !errors.As(err, &se) {
			t.Errorf("Keys() error = %v, want *SettingsError", err)
		}
	})
}

type failingResolver struct{ err error }

func (f failingResolver) GetToken(context.Context) (string, error) { return "", f.err }

func TestResolverChain(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	tests := []struct {
		name    string
		chain   ResolverChain
		want    string
		wantErr bool
	}{
		{name: "empty chain", chain: nil, want: ""},
		{name: "first non-empty wins", chain: ResolverChain{StaticToken(""), StaticToken("env"), StaticToken("store")}, want: "env"},
		{name: "nil entries skipped", chain: ResolverChain{nil, StaticToken("x")}, want: "x"},
		{name: "error stops the chain", chain: ResolverChain{failingResolver{boom}, StaticToken("x")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.chain.GetToken(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GetToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
