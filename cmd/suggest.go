package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/pt-omnibox/internal"
	"github.com/spf13/cobra"
)

var suggestRaw bool

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest <text>",
	Short: "Suggest saved searches matching text",
	Long: `Fetch your saved searches and print the ones whose "[group] name" label
matches the text, at most max_suggestions of them (10 by default).

The match is a case-insensitive substring unless raw_pattern is enabled in
the config, in which case the text is a regular expression.

Use --raw to print the suggestion markup (<match>, <dim>, <url>) as is.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		session := newSession()

		var items []internal.HighlightedSuggestion
		err := session.InputChanged(cmd.Context(), text, func(got []internal.HighlightedSuggestion) {
			items = got
		})
		reportSuggestError(err)

		printSuggestions(cmd.OutOrStdout(), items, suggestRaw)
		return nil
	},
}

// reportSuggestError logs why a keystroke produced no suggestions
func reportSuggestError(err error) {
	if err == nil {
		return
	}
	var patternErr *internal.InvalidPatternError
	if errors.As(err, &patternErr) {
		internal.LogWarn("%v", err)
		return
	}
	internal.LogWarn("Could not load saved searches: %v", err)
}

// printSuggestions writes one numbered line per suggestion
func printSuggestions(w io.Writer, items []internal.HighlightedSuggestion, raw bool) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No suggestions")
		return
	}

	styles := internal.DefaultMarkupStyles()
	for i, item := range items {
		line := item.Description
		if !raw {
			line = internal.RenderMarkup(line, styles)
		}
		fmt.Fprintf(w, "%2d. %s\n", i+1, line)
	}
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().BoolVar(&suggestRaw, "raw", false, "Print suggestion markup instead of styled text")
}
