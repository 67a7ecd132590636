package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rhapsode/internal/config"
	"rhapsode/internal/textpipe"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var keepStopwords bool
	var outputPath string

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Run the cleaning pipeline over a local file or stdin",
		Long: `Apply the cleaning stages to text that is already extracted: strip
duplicated book headings, digits, bracketed insertions, and translator tags,
collapse whitespace, modernize archaic elisions, and drop stopwords. Reads
stdin when the file argument is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			text, err := readCleanInput(cmd, args)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			pipeline := textpipe.New(textpipe.Options{
				HeaderMarker:   cfg.Cleaning.HeaderMarker,
				TranslatorTags: cfg.Cleaning.TranslatorTags,
				Modernize:      cfg.Cleaning.Modernize,
			}, logger)
			cleaned, _ := pipeline.Run(text)

			if cfg.Stopwords.Enabled && !keepStopwords {
				set, _, err := newCatalog(cfg, logger).Resolve(cmd.Context())
				if err != nil {
					return err
				}
				cleaned = set.Filter(cleaned)
			}

			target := strings.TrimSpace(outputPath)
			if target == "" {
				fmt.Fprintln(cmd.OutOrStdout(), cleaned)
				return nil
			}
			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if err := os.WriteFile(expanded, []byte(cleaned), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d words to %s\n", textpipe.WordCount(cleaned), expanded)
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepStopwords, "keep-stopwords", false, "Skip stopword removal")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the cleaned text to a file instead of stdout")
	return cmd
}

func readCleanInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	path, err := config.ExpandPath(args[0])
	if err != nil {
		return "", fmt.Errorf("resolve input path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
