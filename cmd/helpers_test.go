package cmd

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/iksnae/pt-omnibox/internal"
	"github.com/iksnae/pt-omnibox/testutil"
	"github.com/spf13/cobra"
)

// recordingBrowser records navigations instead of launching a browser
type recordingBrowser struct {
	mu   sync.Mutex
	urls []string
}

func (b *recordingBrowser) ActiveTab(context.Context) (internal.Tab, error) {
	return internal.Tab{ID: 1}, nil
}

func (b *recordingBrowser) Update(_ context.Context, _ internal.Tab, url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.urls = append(b.urls, url)
	return nil
}

func (b *recordingBrowser) URLs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.urls...)
}

// testEnv is an isolated config dir pointing at a fake API
type testEnv struct {
	dir        string
	configPath string
	api        *testutil.FakePapertrail
	browser    *recordingBrowser
}

// newTestEnv writes a config for the fake API and stores token in the
// settings database unless it is empty
func newTestEnv(t *testing.T, token string, extraConfig string) *testEnv {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PT_OMNIBOX_TOKEN", "")

	env := &testEnv{
		dir:     testutil.CreateTempDir(t),
		api:     testutil.NewFakePapertrail(t, testutil.SavedSearchesJSON),
		browser: &recordingBrowser{},
	}

	settings := filepath.Join(env.dir, "settings.db")
	if token != "" {
		writeSettings(t, settings, map[string]string{internal.DefaultTokenKey: token})
	}

	config := fmt.Sprintf("endpoint: %s\nsettings_path: %s\n%s", env.api.URL(), settings, extraConfig)
	env.configPath = testutil.WriteFile(t, env.dir, "config.yaml", []byte(config))

	previous := newBrowser
	newBrowser = func(*internal.Config) internal.Browser { return env.browser }
	t.Cleanup(func() { newBrowser = previous })

	return env
}

// writeSettings stores values in a settings database at path
func writeSettings(t *testing.T, path string, values map[string]string) {
	t.Helper()
	db, err := internal.OpenWritableDatabase(path)
	if err != nil {
		t.Fatalf("Failed to open settings database: %v", err)
	}
	defer db.Close()

	for k, v := range values {
		if err := internal.PutSetting(context.Background(), db, k, v); err != nil {
			t.Fatalf("Failed to insert setting %s: %v", k, err)
		}
	}
}

// run executes the root command with the env's config
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return executeCommand(t, stdin, append([]string{"--config", e.configPath}, args...)...)
}

// executeCommand runs rootCmd with fresh flag values and captured output
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags undoes flag values left behind by earlier executions
func resetFlags(c *cobra.Command) {
	verbose, configPath, settingsPath = false, "", ""
	suggestRaw, shellRaw = false, false
	format, outputFile = "jsonl", ""
	openDisposition = string(internal.DispositionCurrentTab)

	var reset func(*cobra.Command)
	reset = func(c *cobra.Command) {
		for _, name := range []string{"help", "version"} {
			if f := c.Flags().Lookup(name); f != nil {
				_ = f.Value.Set("false")
			}
		}
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(c)
}
