package cmd

import (
	"errors"
	"fmt"

	"github.com/iksnae/pt-omnibox/internal"
	"github.com/iksnae/pt-omnibox/internal/export"
	"github.com/spf13/cobra"
)

var (
	format     string
	outputFile string
)

// errNoToken is returned by commands that cannot work without a token
var errNoToken = errors.New("no Papertrail token configured (set PT_OMNIBOX_TOKEN or the pt_personal_token setting)")

// searchesCmd represents the searches command
var searchesCmd = &cobra.Command{
	Use:   "searches",
	Short: "Export your saved searches",
	Long: `Fetch every saved search from the Papertrail API and export it in one of
the supported formats (jsonl, md, yaml, json).

Output goes to stdout unless --output names a file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		token, err := cfg.Credentials().GetToken(ctx)
		if err != nil {
			return err
		}
		if token == "" {
			return errNoToken
		}

		client := internal.NewPapertrailClient(cfg.Endpoint, cfg.Timeout)
		var searches []internal.SavedSearch
		err = internal.ShowProgress(ctx, "Fetching saved searches", func() error {
			var fetchErr error
			searches, fetchErr = client.FetchSavedSearches(ctx, token)
			return fetchErr
		})
		if err != nil {
			return err
		}
		internal.LogInfo("Fetched %d saved search(es) from %s", len(searches), client.Endpoint())

		if err := export.WriteTo(exporter, searches, cmd.OutOrStdout(), outputFile); err != nil {
			return err
		}
		if outputFile != "" {
			internal.PrintSuccess(cmd.ErrOrStderr(), fmt.Sprintf("Exported %d saved search(es) to %s", len(searches), outputFile))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchesCmd)
	searchesCmd.Flags().StringVarP(&format, "format", "f", "jsonl", "Export format (jsonl, md, yaml, json)")
	searchesCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write to this file instead of stdout")
}
