package internal

import "sync"

// SuggestionCache holds the most recent fetch result for one session.
// It has no TTL and no refresh; a new session starts empty. Concurrent
// writers are not ordered: the last completed Set wins.
type SuggestionCache struct {
	mu          sync.RWMutex
	suggestions []Suggestion
	writes      int
}

// NewSuggestionCache creates an empty cache
func NewSuggestionCache() *SuggestionCache {
	return &SuggestionCache{}
}

// Get returns a copy of the cached suggestions in insertion order
func (c *SuggestionCache) Get() []Suggestion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Suggestion, len(c.suggestions))
	copy(out, c.suggestions)
	return out
}

// Set replaces the cached suggestions
func (c *SuggestionCache) Set(suggestions []Suggestion) {
	stored := make([]Suggestion, len(suggestions))
	copy(stored, suggestions)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.suggestions = stored
	c.writes++
}

// Len returns the number of cached suggestions
func (c *SuggestionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.suggestions)
}

// writeCount returns how many times Set was called
func (c *SuggestionCache) writeCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.writes
}
