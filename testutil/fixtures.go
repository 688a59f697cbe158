package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// SavedSearchesJSON is a searches.json response with three saved searches
const SavedSearchesJSON = `[
  {
    "id": 1,
    "name": "Errors",
    "query": "error OR fatal",
    "group": {"id": 10, "name": "Prod"},
    "_links": {"html_search": {"href": "https://x/1"}}
  },
  {
    "id": 2,
    "name": "Slow requests",
    "query": "duration>1000",
    "group": {"id": 10, "name": "Prod"},
    "_links": {"html_search": {"href": "https://x/2"}}
  },
  {
    "id": 3,
    "name": "Deploys",
    "query": "deploy",
    "group": {"id": 11, "name": "Staging"},
    "_links": {"html_search": {"href": "https://x/3"}}
  }
]`

// FakePapertrail is an httptest server standing in for the saved-search API
type FakePapertrail struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests int
	tokens   []string
	status   int
	body     string
	hold     chan struct{}
}

// NewFakePapertrail starts a fake API answering every GET with body
func NewFakePapertrail(t *testing.T, body string) *FakePapertrail {
	t.Helper()
	f := &FakePapertrail{status: http.StatusOK, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakePapertrail) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests++
	f.tokens = append(f.tokens, r.Header.Get("X-Papertrail-Token"))
	status, body, hold := f.status, f.body, f.hold
	f.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-r.Context().Done():
			return
		}
	}

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// URL returns the searches endpoint of the fake
func (f *FakePapertrail) URL() string {
	return f.Server.URL + "/api/v1/searches.json"
}

// Respond changes the status and body served from now on
func (f *FakePapertrail) Respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.body = body
}

// Hold makes requests hang until the client gives up or the test ends
func (f *FakePapertrail) Hold(t *testing.T) {
	t.Helper()
	hold := make(chan struct{})
	f.mu.Lock()
	f.hold = hold
	f.mu.Unlock()
	t.Cleanup(func() { close(hold) })
}

// Requests returns how many requests were served
func (f *FakePapertrail) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

// Tokens returns the X-Papertrail-Token header of each request in order
func (f *FakePapertrail) Tokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}
