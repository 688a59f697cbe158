package cmd

import (
	"fmt"

	"github.com/iksnae/pt-omnibox/internal"
	"github.com/spf13/cobra"
)

var openDisposition string

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Open a saved search URL in the browser",
	Long: `Navigate the browser to a URL, usually the content of a suggestion.

Text that is not an absolute URL is ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		disposition, err := parseDisposition(openDisposition)
		if err != nil {
			return err
		}
		return newSession().InputEntered(cmd.Context(), args[0], disposition)
	},
}

func parseDisposition(name string) (internal.Disposition, error) {
	switch d := internal.Disposition(name); d {
	case internal.DispositionCurrentTab, internal.DispositionNewForegroundTab, internal.DispositionNewBackgroundTab:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported disposition: %s (supported: currentTab, newForegroundTab, newBackgroundTab)", name)
	}
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().StringVar(&openDisposition, "disposition", string(internal.DispositionCurrentTab), "Where to open the URL (currentTab, newForegroundTab, newBackgroundTab)")
}
