package internal

import (
	"regexp"
	"strings"
)

// DefaultMaxSuggestions caps how many suggestions are offered per keystroke
const DefaultMaxSuggestions = 10

// Markup tags understood by the omnibox suggestion renderer
const (
	TagMatch = "match"
	TagDim   = "dim"
	TagURL   = "url"
)

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeMarkup escapes text so it can be embedded in suggestion markup
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// Highlighter filters suggestions by typed text and decorates the matches.
//
// By default the query is matched as a literal, case-insensitive substring.
// With RawPattern the query is compiled as a regular expression instead, so
// "err|warn" matches either word; a query that does not compile produces no
// suggestions and an *InvalidPatternError.
type Highlighter struct {
	Max        int
	RawPattern bool
}

// NewHighlighter creates a highlighter. A non-positive max falls back to
// DefaultMaxSuggestions.
func NewHighlighter(max int, rawPattern bool) *Highlighter {
	if max <= 0 {
		max = DefaultMaxSuggestions
	}
	return &Highlighter{Max: max, RawPattern: rawPattern}
}

// Highlight applies the default highlighter (literal matching, 10 results)
func Highlight(query string, suggestions []Suggestion) []HighlightedSuggestion {
	out, _ := NewHighlighter(DefaultMaxSuggestions, false).Highlight(query, suggestions)
	return out
}

// Matcher compiles the case-insensitive matcher for query
func (h *Highlighter) Matcher(query string) (*regexp.Regexp, error) {
	pattern := query
	if !h.RawPattern {
		pattern = regexp.QuoteMeta(query)
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: query, Err: err}
	}
	return re, nil
}

// Highlight returns at most Max suggestions whose description matches
// query, in their original order, with markup applied
func (h *Highlighter) Highlight(query string, suggestions []Suggestion) ([]HighlightedSuggestion, error) {
	re, err := h.Matcher(query)
	if err != nil {
		return nil, err
	}

	max := h.Max
	if max <= 0 {
		max = DefaultMaxSuggestions
	}

	out := make([]HighlightedSuggestion, 0, min(max, len(suggestions)))
	for _, s := range suggestions {
		if len(out) == max {
			break
		}
		loc := re.FindStringIndex(s.Description)
		if loc == nil {
			continue
		}
		out = append(out, HighlightedSuggestion{
			Content:     s.Content,
			Description: decorate(s, loc),
		})
	}
	return out, nil
}

// decorate wraps the first match in <match>, the label in <dim> and appends
// the URL in <url>
func decorate(s Suggestion, loc []int) string {
	var b strings.Builder
	b.WriteString("<" + TagDim + ">")
	b.WriteString(EscapeMarkup(s.Description[:loc[0]]))
	b.WriteString("<" + TagMatch + ">")
	b.WriteString(EscapeMarkup(s.Description[loc[0]:loc[1]]))
	b.WriteString("</" + TagMatch + ">")
	b.WriteString(EscapeMarkup(s.Description[loc[1]:]))
	b.WriteString("</" + TagDim + "> <" + TagURL + ">")
	b.WriteString(EscapeMarkup(s.Content))
	b.WriteString("</" + TagURL + ">")
	return b.String()
}
