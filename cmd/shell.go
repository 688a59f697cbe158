package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iksnae/pt-omnibox/internal"
	"github.com/spf13/cobra"
)

const shellPrompt = "pt> "

var shellRaw bool

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Type queries interactively",
	Long: `Start an omnibox session. Saved searches are fetched in the background
as soon as the session starts and reused for every query.

Each line you type is treated as the current omnibox text and answered with
suggestions. Commands:
  :open N      open the N-th suggestion of the last query
  :open <url>  open a URL
  :quit        end the session`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd, newSession())
	},
}

func runShell(cmd *cobra.Command, session *internal.Session) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	// Leaving the shell abandons a start-of-session fetch still in flight
	startCtx, cancelStart := context.WithCancel(ctx)
	defer cancelStart()
	started := session.StartAsync(startCtx)

	var last []internal.HighlightedSuggestion
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == ":quit" || line == ":q":
			cancelStart()
			return waitStarted(started, scanner.Err())
		case strings.HasPrefix(line, ":open"):
			target, err := shellTarget(strings.TrimSpace(strings.TrimPrefix(line, ":open")), last)
			if err != nil {
				internal.PrintWarning(out, err.Error())
				continue
			}
			if err := session.InputEntered(ctx, target, internal.DispositionCurrentTab); err != nil {
				internal.PrintError(out, err.Error())
			}
		case line == "":
			continue
		default:
			last = nil
			err := session.InputChanged(ctx, line, func(items []internal.HighlightedSuggestion) {
				last = items
			})
			reportSuggestError(err)
			printSuggestions(out, last, shellRaw)
		}
	}

	cancelStart()
	return waitStarted(started, scanner.Err())
}

// shellTarget resolves the argument of :open to a URL
func shellTarget(arg string, last []internal.HighlightedSuggestion) (string, error) {
	if arg == "" {
		return "", fmt.Errorf("usage: :open N | :open <url>")
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}
	if n < 1 || n > len(last) {
		return "", fmt.Errorf("no suggestion %d", n)
	}
	return last[n-1].Content, nil
}

// waitStarted waits for the start-of-session fetch to settle. Callers
// cancel it first so this returns promptly.
func waitStarted(started <-chan error, err error) error {
	if startErr := <-started; startErr != nil {
		internal.LogDebug("Start-of-session fetch failed: %v", startErr)
	}
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().BoolVar(&shellRaw, "raw", false, "Print suggestion markup instead of styled text")
}
