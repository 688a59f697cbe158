package internal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MarkupStyles maps suggestion markup tags to terminal styles
type MarkupStyles struct {
	Match lipgloss.Style
	Dim   lipgloss.Style
	URL   lipgloss.Style
}

// DefaultMarkupStyles mirrors how an address bar shows suggestions
func DefaultMarkupStyles() MarkupStyles {
	return MarkupStyles{
		Match: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Dim:   lipgloss.NewStyle().Faint(true),
		URL:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
	}
}

var markupUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")

// RenderMarkup renders a highlighted description for the terminal. Nested
// tags stack their styles with the innermost taking precedence; unknown tags
// are kept as text.
func RenderMarkup(markup string, styles MarkupStyles) string {
	var out strings.Builder
	var open []string

	flush := func(text string) {
		if text == "" {
			return
		}
		text = markupUnescaper.Replace(text)
		style := lipgloss.NewStyle()
		for i := len(open) - 1; i >= 0; i-- {
			style = style.Inherit(styles.forTag(open[i]))
		}
		out.WriteString(style.Render(text))
	}

	rest := markup
	for rest != "" {
		i := strings.IndexByte(rest, '<')
		if i < 0 {
			flush(rest)
			break
		}
		flush(rest[:i])
		rest = rest[i:]

		j := strings.IndexByte(rest, '>')
		if j < 0 {
			flush(rest)
			break
		}
		tag := rest[1:j]
		rest = rest[j+1:]

		switch {
		case isMarkupTag(tag):
			open = append(open, tag)
		case strings.HasPrefix(tag, "/") && isMarkupTag(tag[1:]):
			if n := len(open); n > 0 && open[n-1] == tag[1:] {
				open = open[:n-1]
			}
		default:
			flush("<" + tag + ">")
		}
	}
	return out.String()
}

// stripMarkup removes tags and entities, leaving plain text
func stripMarkup(markup string) string {
	return RenderMarkup(markup, MarkupStyles{})
}

func isMarkupTag(tag string) bool {
	return tag == TagMatch || tag == TagDim || tag == TagURL
}

func (s MarkupStyles) forTag(tag string) lipgloss.Style {
	switch tag {
	case TagMatch:
		return s.Match
	case TagDim:
		return s.Dim
	default:
		return s.URL
	}
}
