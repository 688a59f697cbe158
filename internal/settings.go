package internal

import (
	"context"
	"os"
)

// DefaultTokenKey is the settings key the Papertrail token is stored under
const DefaultTokenKey = "pt_personal_token"

// CredentialResolver looks up the API token. An unconfigured token is
// reported as "" with a nil error.
type CredentialResolver interface {
	GetToken(ctx context.Context) (string, error)
}

// SettingsStore reads the token from the sqlite settings database. The
// store is owned by whatever configures the token; it is only ever read here.
type SettingsStore struct {
	path     string
	tokenKey string
}

// NewSettingsStore creates a settings store for the database at path
func NewSettingsStore(path, tokenKey string) *SettingsStore {
	if tokenKey == "" {
		tokenKey = DefaultTokenKey
	}
	return &SettingsStore{path: path, tokenKey: tokenKey}
}

// Path returns the database path
func (s *SettingsStore) Path() string {
	return s.path
}

// Exists reports whether the settings database file is present
func (s *SettingsStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// GetToken returns the stored token, or "" when it was never configured
func (s *SettingsStore) GetToken(ctx context.Context) (string, error) {
	if s.path == "" || !s.Exists() {
		LogDebug("Settings store %q not found, token not configured", s.path)
		return "", nil
	}

	db, err := OpenDatabase(s.path)
	if err != nil {
		return "", &SettingsError{Path: s.path, Op: "open", Err: err}
	}
	defer db.Close()

	token, found, err := QuerySetting(ctx, db, s.tokenKey)
	if err != nil {
		return "", &SettingsError{Path: s.path, Op: "read", Err: err}
	}
	if !found {
		LogDebug("No %s in settings store", s.tokenKey)
		return "", nil
	}
	return token, nil
}

// Keys lists the setting keys present in the store, without their values.
// A missing store has no keys.
func (s *SettingsStore) Keys(ctx context.Context) ([]string, error) {
	if s.path == "" || !s.Exists() {
		return nil, nil
	}

	db, err := OpenDatabase(s.path)
	if err != nil {
		return nil, &SettingsError{Path: s.path, Op: "open", Err: err}
	}
	defer db.Close()

	pairs, err := QuerySettings(ctx, db, "%")
	if err != nil {
		return nil, &SettingsError{Path: s.path, Op: "read", Err: err}
	}
	keys := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		keys = append(keys, pair.Key)
	}
	return keys, nil
}

// StaticToken resolves to a fixed token, e.g. one taken from the environment
type StaticToken string

// GetToken returns the static token
func (t StaticToken) GetToken(context.Context) (string, error) {
	return string(t), nil
}

// ResolverChain returns the first non-empty token from its resolvers
type ResolverChain []CredentialResolver

// GetToken consults each resolver in order
func (c ResolverChain) GetToken(ctx context.Context) (string, error) {
	for _, r := range c {
		if r == nil {
			continue
		}
		token, err := r.GetToken(ctx)
		if err != nil {
			return "", err
		}
		if token != "" {
			return token, nil
		}
	}
	return "", nil
}
