package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "pt-omnibox"

// Paths holds the on-disk locations used by pt-omnibox
type Paths struct {
	ConfigDir    string // directory holding config.yaml and settings.db
	ConfigFile   string // YAML configuration
	SettingsPath string // sqlite settings store with the API token
}

// DetectPaths resolves the default locations for the current user.
// XDG_CONFIG_HOME is honored on every platform except Windows.
func DetectPaths() (Paths, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" || runtime.GOOS == "windows" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Paths{}, fmt.Errorf("failed to get config directory: %w", err)
		}
		base = dir
	}
	return PathsIn(filepath.Join(base, appDirName)), nil
}

// PathsIn returns the layout rooted at dir
func PathsIn(dir string) Paths {
	return Paths{
		ConfigDir:    dir,
		ConfigFile:   filepath.Join(dir, "config.yaml"),
		SettingsPath: filepath.Join(dir, "settings.db"),
	}
}

// ConfigExists checks if the config file exists
func (p Paths) ConfigExists() bool {
	_, err := os.Stat(p.ConfigFile)
	return err == nil
}

// SettingsExists checks if the settings store exists
func (p Paths) SettingsExists() bool {
	_, err := os.Stat(p.SettingsPath)
	return err == nil
}
