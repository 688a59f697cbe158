package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/pt-omnibox/internal"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	configPath   string
	settingsPath string
	version      string = "dev"
	commit       string = "unknown"
	date         string = "unknown"
)

// cfg is loaded before any subcommand runs
var cfg *internal.Config

// newBrowser builds the browser used for navigation; tests swap it out
var newBrowser = func(c *internal.Config) internal.Browser {
	return &internal.SystemBrowser{Command: c.Browser}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pt-omnibox",
	Short: "Open Papertrail saved searches from the terminal",
	Long: `An omnibox for Papertrail saved searches.

Type part of a saved search name and pt-omnibox suggests matching searches,
highlighting what matched. Pick one and it opens in your browser.

The API token is read from PT_OMNIBOX_TOKEN or from the "pt_personal_token"
key of the settings database.

Quick Start:
  pt-omnibox suggest prod                # Suggest searches matching "prod"
  pt-omnibox shell                       # Type queries interactively
  pt-omnibox open <url>                  # Open a search in the browser
  pt-omnibox searches --format md        # Export saved searches as Markdown`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		internal.SetLogOutput(cmd.ErrOrStderr())

		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		if verbose {
			internal.SetVerbose(true)
			return nil
		}
		level, err := internal.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		internal.SetLogLevel(level)
		return nil
	},
	SilenceUsage: true,
}

// loadConfig resolves the config file and applies flag overrides
func loadConfig() (*internal.Config, error) {
	paths, err := internal.DetectPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to detect config paths: %w", err)
	}

	path, required := paths.ConfigFile, false
	if configPath != "" {
		path, required = configPath, true
	}

	c, err := internal.LoadConfig(path, required, paths)
	if err != nil {
		return nil, err
	}
	if settingsPath != "" {
		c.SettingsPath = settingsPath
	}
	return c, nil
}

// newSession starts a fresh omnibox session from the loaded config
func newSession() *internal.Session {
	return internal.NewSessionFromConfig(cfg, newBrowser(cfg))
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/pt-omnibox/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Settings database holding the API token")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
