package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rhapsode/internal/config"
	"rhapsode/internal/gutenberg"
	"rhapsode/internal/textpipe"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var sourceURL string
	var raw bool
	var outputPath string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the source text",
		Long: `Download the configured document and print it, sliced to the poem body
between the configured markers unless --raw is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			url := strings.TrimSpace(sourceURL)
			if url == "" {
				url = cfg.Source.URL
			}

			client := gutenberg.New(
				gutenberg.WithTimeout(cfg.RequestTimeout()),
				gutenberg.WithUserAgent(cfg.Source.UserAgent),
			)
			text, err := client.FetchText(cmd.Context(), url)
			if err != nil {
				return err
			}
			if !raw {
				body, err := textpipe.SliceBody(text, cfg.Source.BodyStart, cfg.Source.BodyEnd)
				if err != nil {
					return err
				}
				text = body
			}

			target := strings.TrimSpace(outputPath)
			if target == "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if err := os.WriteFile(expanded, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d words to %s\n", textpipe.WordCount(text), expanded)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceURL, "url", "", "Override the source document URL")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the document as served, without body slicing")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the text to a file instead of stdout")
	return cmd
}
