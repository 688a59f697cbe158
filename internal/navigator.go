package internal

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Tab identifies a browser tab
type Tab struct {
	ID  int
	URL string
}

// Browser is the tab surface navigation acts on
type Browser interface {
	// ActiveTab returns the active tab of the focused window
	ActiveTab(ctx context.Context) (Tab, error)
	// Update points tab at url, replacing the current page
	Update(ctx context.Context, tab Tab, url string) error
}

// ValidateURL accepts only well-formed absolute URLs
func ValidateURL(text string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(text))
	if err != nil {
		return nil, &NavigationError{URL: text, Err: err}
	}
	if !u.IsAbs() {
		return nil, &NavigationError{URL: text, Err: errors.New("not an absolute URL")}
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host == "" {
		return nil, &NavigationError{URL: text, Err: errors.New("missing host")}
	}
	return u, nil
}

// Navigator sends the active tab to a selected suggestion
type Navigator struct {
	browser Browser
}

// NewNavigator creates a navigator over browser
func NewNavigator(browser Browser) *Navigator {
	return &Navigator{browser: browser}
}

// Navigate validates text and, when valid, updates the active tab once.
// An invalid URL is dropped without error: the keyword session simply
// does not navigate.
func (n *Navigator) Navigate(ctx context.Context, text string) error {
	u, err := ValidateURL(text)
	if err != nil {
		LogDebug("Ignoring navigation: %v", err)
		return nil
	}
	target := u.String()

	tab, err := n.browser.ActiveTab(ctx)
	if err != nil {
		return &NavigationError{URL: target, Err: fmt.Errorf("active tab: %w", err)}
	}
	if err := n.browser.Update(ctx, tab, target); err != nil {
		return &NavigationError{URL: target, Err: err}
	}
	LogDebug("Navigated tab %d to %s", tab.ID, target)
	return nil
}

// SystemBrowser hands URLs to the desktop's default browser. The desktop
// reuses its current window, so there is a single logical active tab.
type SystemBrowser struct {
	// Command overrides the opener (e.g. "firefox"); the URL is appended
	// as the last argument
	Command string
}

// ActiveTab returns the single logical tab
func (b *SystemBrowser) ActiveTab(context.Context) (Tab, error) {
	return Tab{ID: 1}, nil
}

// Update opens url in the browser
func (b *SystemBrowser) Update(_ context.Context, _ Tab, url string) error {
	name, args, err := b.opener(url)
	if err != nil {
		return err
	}
	// Not tied to ctx: the browser must outlive this process
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	// Don't wait for the browser to close
	go func() { _ = cmd.Wait() }()
	return nil
}

func (b *SystemBrowser) opener(url string) (string, []string, error) {
	if fields := strings.Fields(b.Command); len(fields) > 0 {
		return fields[0], append(fields[1:], url), nil
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{url}, nil
	case "linux", "freebsd", "openbsd":
		return "xdg-open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("browser opening not supported on %s", runtime.GOOS)
	}
}
