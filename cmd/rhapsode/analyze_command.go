package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rhapsode/internal/analysis"
	"rhapsode/internal/config"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var sourceURL string
	var textPath string
	var keepStopwords bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Fetch, clean, and score the configured text",
		Long: `Run the full analysis: download the source document, slice out the poem
body, strip duplicated book headings, digits, bracketed insertions, and
translator tags, modernize archaic elisions, remove English stopwords, and
score the remainder with the VADER sentiment lexicon.

Examples:
  rhapsode analyze                          # analyze the configured source
  rhapsode analyze --url https://...        # analyze another document
  rhapsode analyze --text iliad.txt --json  # score a local file, emit JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(sourceURL) != "" && strings.TrimSpace(textPath) != "" {
				return errors.New("--url and --text are mutually exclusive")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if url := strings.TrimSpace(sourceURL); url != "" {
				cfg.Source.URL = url
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if keepStopwords {
				cfg.Stopwords.Enabled = false
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			var opts []analysis.Option
			if path := strings.TrimSpace(textPath); path != "" {
				expanded, err := config.ExpandPath(path)
				if err != nil {
					return fmt.Errorf("resolve text path: %w", err)
				}
				cfg.Source.URL = expanded
				opts = append(opts, analysis.WithFetcher(fileFetcher{path: expanded}))
			}

			runner := analysis.New(cfg, logger, opts...)
			report, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, report)
			}
			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceURL, "url", "", "Override the source document URL")
	cmd.Flags().StringVar(&textPath, "text", "", "Analyze a local file instead of downloading")
	cmd.Flags().BoolVar(&keepStopwords, "keep-stopwords", false, "Skip stopword removal before scoring")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the report as JSON")
	return cmd
}

// fileFetcher satisfies the fetcher contract for --text runs by reading the
// document from disk instead of the network.
type fileFetcher struct {
	path string
}

func (f fileFetcher) FetchText(_ context.Context, _ string) (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("read local text: %w", err)
	}
	return string(data), nil
}
