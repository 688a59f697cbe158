package internal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	// DefaultEndpoint is the Papertrail saved-search listing
	DefaultEndpoint = "https://papertrailapp.com/api/v1/searches.json"
	// TokenHeader carries the personal API token
	TokenHeader = "X-Papertrail-Token"
)

// Fetcher retrieves the saved searches as suggestions
type Fetcher interface {
	FetchSuggestions(ctx context.Context, token string) ([]Suggestion, error)
}

// PapertrailClient talks to the saved-search endpoint. It never retries and
// never paginates: one GET returns the complete list or the call fails.
type PapertrailClient struct {
	endpoint string
	http     *resty.Client
}

// NewPapertrailClient creates a client for endpoint. A zero timeout leaves
// requests unbounded apart from ctx.
func NewPapertrailClient(endpoint string, timeout time.Duration) *PapertrailClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	httpClient := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "pt-omnibox")
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}

	return &PapertrailClient{endpoint: endpoint, http: httpClient}
}

// Endpoint returns the configured endpoint
func (c *PapertrailClient) Endpoint() string {
	return c.endpoint
}

// FetchSuggestions fetches saved searches and maps them to suggestions in
// the order the API returned them
func (c *PapertrailClient) FetchSuggestions(ctx context.Context, token string) ([]Suggestion, error) {
	searches, err := c.FetchSavedSearches(ctx, token)
	if err != nil {
		return nil, err
	}
	return ToSuggestions(searches), nil
}

// FetchSavedSearches performs the GET and decodes every record
func (c *PapertrailClient) FetchSavedSearches(ctx context.Context, token string) ([]SavedSearch, error) {
	LogDebug("GET %s", c.endpoint)
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(TokenHeader, token).
		Get(c.endpoint)
	if err != nil {
		return nil, &FetchError{Endpoint: c.endpoint, Op: "request", Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &FetchError{Endpoint: c.endpoint, Op: "status", Err: fmt.Errorf("unexpected status %s", resp.Status())}
	}

	searches, err := ParseSavedSearches(resp.Body())
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			fe.Endpoint = c.endpoint
		}
		return nil, err
	}

	LogDebug("Fetched %d saved search(es) in %s", len(searches), time.Since(start).Round(time.Millisecond))
	return searches, nil
}

// ParseSavedSearches decodes a searches.json body. The body must be a JSON
// array and every record must carry name, group.name and
// _links.html_search.href; otherwise nothing is returned.
func ParseSavedSearches(body []byte) ([]SavedSearch, error) {
	if !gjson.ValidBytes(body) {
		return nil, &FetchError{Op: "decode", Err: errors.New("response is not valid JSON")}
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, &FetchError{Op: "decode", Err: fmt.Errorf("expected a JSON array, got %s", root.Type)}
	}

	records := root.Array()
	searches := make([]SavedSearch, 0, len(records))
	for i, record := range records {
		search, err := parseSavedSearch(record)
		if err != nil {
			return nil, &FetchError{Op: "field", Err: fmt.Errorf("record %d: %w", i, err)}
		}
		searches = append(searches, search)
	}

	return searches, nil
}

func parseSavedSearch(record gjson.Result) (SavedSearch, error) {
	if !record.IsObject() {
		return SavedSearch{}, fmt.Errorf("expected an object, got %s", record.Type)
	}

	required := func(path string) (string, error) {
		v := record.Get(path)
		if !v.Exists() || v.Type == gjson.Null {
			return "", fmt.Errorf("missing field %s", path)
		}
		return v.String(), nil
	}

	name, err := required("name")
	if err != nil {
		return SavedSearch{}, err
	}
	groupName, err := required("group.name")
	if err != nil {
		return SavedSearch{}, err
	}
	href, err := required("_links.html_search.href")
	if err != nil {
		return SavedSearch{}, err
	}

	return SavedSearch{
		ID:            record.Get("id").Int(),
		Name:          name,
		Query:         record.Get("query").String(),
		GroupID:       record.Get("group.id").Int(),
		GroupName:     groupName,
		HTMLSearchURL: href,
	}, nil
}
