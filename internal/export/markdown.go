package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/pt-omnibox/internal"
)

// MarkdownExporter exports saved searches as a Markdown table
type MarkdownExporter struct{}

// Export exports saved searches to Markdown format
func (e *MarkdownExporter) Export(searches []internal.SavedSearch, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# Papertrail saved searches\n\n**Searches:** %d\n\n", len(searches)); err != nil {
		return err
	}
	if len(searches) == 0 {
		return nil
	}

	_, _ = fmt.Fprintf(w, "| Group | Name | Query | Link |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---|---|\n")
	for _, s := range searches {
		_, err := fmt.Fprintf(w, "| %s | %s | %s | [open](%s) |\n",
			escapeCell(s.GroupName), escapeCell(s.Name), escapeQuery(s.Query), s.HTMLSearchURL)
		if err != nil {
			return err
		}
	}

	return nil
}

// escapeCell keeps a value inside a single table cell
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	text = strings.ReplaceAll(text, "**", "\\*\\*")
	text = strings.ReplaceAll(text, "__", "\\_\\_")
	return strings.Join(strings.Fields(text), " ")
}

func escapeQuery(query string) string {
	if query == "" {
		return ""
	}
	return "`" + strings.ReplaceAll(escapeCell(query), "`", "'") + "`"
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
