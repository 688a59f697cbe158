package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/pt-omnibox/internal"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that pt-omnibox can reach your saved searches",
	Long: `Check the health of pt-omnibox by verifying:
  • Configuration
  • Settings database availability
  • API token presence
  • Papertrail API access and saved search count

Use --verbose for paths and endpoint details.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ctx := cmd.Context()

		fmt.Fprintln(out, sectionStyle.Render("🔍 pt-omnibox Health Check"))
		fmt.Fprintln(out)

		// Step 1: Configuration
		fmt.Fprintln(out, infoStyle.Render("Step 1: Loading configuration..."))
		fmt.Fprintln(out, successStyle.Render("✅ Configuration loaded"))
		if verbose {
			fmt.Fprintf(out, "   Endpoint: %s\n", cfg.Endpoint)
			fmt.Fprintf(out, "   Max suggestions: %d\n", cfg.MaxSuggestions)
			fmt.Fprintf(out, "   Raw pattern: %t\n", cfg.RawPattern)
		}
		fmt.Fprintln(out)

		// Step 2: Settings database
		fmt.Fprintln(out, infoStyle.Render("Step 2: Checking settings database..."))
		store := internal.NewSettingsStore(cfg.SettingsPath, cfg.TokenKey)
		if store.Exists() {
			fmt.Fprintln(out, successStyle.Render("✅ Settings database found"))
		} else {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Settings database not found"))
		}
		if verbose {
			fmt.Fprintf(out, "   Path: %s\n", store.Path())
			keys, err := store.Keys(ctx)
			if err != nil {
				fmt.Fprintln(out, warningStyle.Render("⚠️  Could not list settings:"), err)
			} else if len(keys) > 0 {
				fmt.Fprintf(out, "   Keys: %s\n", strings.Join(keys, ", "))
			}
		}
		fmt.Fprintln(out)

		// Step 3: Token
		fmt.Fprintln(out, infoStyle.Render("Step 3: Looking up API token..."))
		token, err := cfg.Credentials().GetToken(ctx)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to read token:"), err)
			return summarize(out, false, "settings database is unreadable")
		}
		if token == "" {
			fmt.Fprintln(out, warningStyle.Render("⚠️  No API token configured"))
			fmt.Fprintln(out, "   Without a token no suggestions are offered.")
			return summarize(out, false, "no API token")
		}
		fmt.Fprintln(out, successStyle.Render("✅ API token found"))
		if verbose {
			fmt.Fprintf(out, "   Token: %s\n", maskToken(token))
		}
		fmt.Fprintln(out)

		// Step 4: API
		fmt.Fprintln(out, infoStyle.Render("Step 4: Fetching saved searches..."))
		client := internal.NewPapertrailClient(cfg.Endpoint, cfg.Timeout)
		searches, err := client.FetchSavedSearches(ctx, token)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to fetch saved searches:"), err)
			return summarize(out, false, "Papertrail API is not reachable with this token")
		}
		if len(searches) == 0 {
			fmt.Fprintln(out, warningStyle.Render("⚠️  No saved searches found"))
		} else {
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Found %d saved search(es)", len(searches))))
		}
		if verbose {
			for i, s := range searches {
				if i == 5 {
					fmt.Fprintf(out, "   ... and %d more\n", len(searches)-5)
					break
				}
				fmt.Fprintf(out, "   [%d] %s\n", i+1, s.Label())
			}
		}
		fmt.Fprintln(out)

		return summarize(out, true, fmt.Sprintf("%d saved search(es) available", len(searches)))
	},
}

// summarize prints the final verdict and returns an error when unhealthy
func summarize(out io.Writer, healthy bool, detail string) error {
	fmt.Fprintln(out, sectionStyle.Render("📊 Summary"))
	fmt.Fprintln(out)
	if healthy {
		fmt.Fprintln(out, successStyle.Render("✅ Health check passed!"))
		fmt.Fprintf(out, "   • %s\n", detail)
		return nil
	}
	fmt.Fprintln(out, errorStyle.Render("❌ Health check failed"))
	fmt.Fprintf(out, "   • %s\n", detail)
	return fmt.Errorf("health check failed: %s", detail)
}

// maskToken keeps only the last four characters of a token
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
