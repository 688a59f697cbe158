package internal

import "fmt"

// SettingsError represents errors accessing the settings store
type SettingsError struct {
	Path string
	Op   string // "open", "read"
	Err  error
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("settings error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

// FetchError represents a failed saved-search fetch. Fetches are all or
// nothing, so any of these aborts the whole call.
type FetchError struct {
	Endpoint string
	Op       string // "request", "status", "decode", "field"
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error [%s] %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// InvalidPatternError is returned when a raw query cannot be compiled
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// NavigationError represents a rejected or failed navigation target
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation error %q: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
