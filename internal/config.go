package internal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. PT_OMNIBOX_ENDPOINT
const EnvPrefix = "PT_OMNIBOX"

// Config holds pt-omnibox settings. Values come from defaults, then the
// YAML file, then the environment.
type Config struct {
	Endpoint       string        `yaml:"endpoint" envconfig:"ENDPOINT"`
	MaxSuggestions int           `yaml:"max_suggestions" envconfig:"MAX_SUGGESTIONS"`
	RawPattern     bool          `yaml:"raw_pattern" envconfig:"RAW_PATTERN"`
	Timeout        time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	SettingsPath   string        `yaml:"settings_path" envconfig:"SETTINGS"`
	TokenKey       string        `yaml:"token_key" envconfig:"TOKEN_KEY"`
	Browser        string        `yaml:"browser" envconfig:"BROWSER"`
	LogLevel       string        `yaml:"log_level" envconfig:"LOG_LEVEL"`

	// Token is only ever read from the environment
	Token string `yaml:"-" envconfig:"TOKEN"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig(paths Paths) *Config {
	return &Config{
		Endpoint:       DefaultEndpoint,
		MaxSuggestions: DefaultMaxSuggestions,
		SettingsPath:   paths.SettingsPath,
		TokenKey:       DefaultTokenKey,
		LogLevel:       LogLevelWarn.String(),
	}
}

// LoadConfig reads path (if present) over the defaults and applies
// environment overrides. A missing file is only an error when required.
func LoadConfig(path string, required bool, paths Paths) (*Config, error) {
	cfg := DefaultConfig(paths)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		LogDebug("Loaded config from %s", path)
	case errors.Is(err, os.ErrNotExist) && !required:
		LogDebug("No config at %s, using defaults", path)
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fills zero values and rejects nonsensical settings
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.MaxSuggestions == 0 {
		c.MaxSuggestions = DefaultMaxSuggestions
	}
	if c.MaxSuggestions < 0 {
		return fmt.Errorf("max_suggestions must be positive, got %d", c.MaxSuggestions)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.TokenKey == "" {
		c.TokenKey = DefaultTokenKey
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Credentials returns the resolver chain: environment token first, then
// the settings store
func (c *Config) Credentials() CredentialResolver {
	return ResolverChain{StaticToken(c.Token), NewSettingsStore(c.SettingsPath, c.TokenKey)}
}

// NewSessionFromConfig wires a session with the configured collaborators
func NewSessionFromConfig(c *Config, browser Browser) *Session {
	if browser == nil {
		browser = &SystemBrowser{Command: c.Browser}
	}
	return NewSession(SessionOptions{
		Credentials: c.Credentials(),
		Fetcher:     NewPapertrailClient(c.Endpoint, c.Timeout),
		Navigator:   NewNavigator(browser),
		Highlighter: NewHighlighter(c.MaxSuggestions, c.RawPattern),
	})
}
