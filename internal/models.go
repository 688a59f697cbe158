package internal

import "fmt"

// SavedSearch represents a Papertrail saved search as returned by the API
type SavedSearch struct {
	ID            int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Name          string `json:"name" yaml:"name"`
	Query         string `json:"query,omitempty" yaml:"query,omitempty"`
	GroupID       int64  `json:"group_id,omitempty" yaml:"group_id,omitempty"`
	GroupName     string `json:"group_name" yaml:"group_name"`
	HTMLSearchURL string `json:"html_search_url" yaml:"html_search_url"`
}

// Suggestion is a (content, description) pair offered to the user.
// Content is the URL navigated to when the suggestion is entered.
type Suggestion struct {
	Content     string `json:"content" yaml:"content"`
	Description string `json:"description" yaml:"description"`
}

// HighlightedSuggestion is a Suggestion whose description carries display
// markup (<match>, <dim>, <url>). It is computed per keystroke and never stored.
type HighlightedSuggestion struct {
	Content     string `json:"content" yaml:"content"`
	Description string `json:"description" yaml:"description"`
}

// Label returns the human readable description for a saved search
func (s SavedSearch) Label() string {
	return fmt.Sprintf("[%s] %s -", s.GroupName, s.Name)
}

// ToSuggestion maps a saved search to its suggestion
func (s SavedSearch) ToSuggestion() Suggestion {
	return Suggestion{
		Content:     s.HTMLSearchURL,
		Description: s.Label(),
	}
}

// ToSuggestions maps saved searches in order
func ToSuggestions(searches []SavedSearch) []Suggestion {
	suggestions := make([]Suggestion, 0, len(searches))
	for _, s := range searches {
		suggestions = append(suggestions, s.ToSuggestion())
	}
	return suggestions
}
