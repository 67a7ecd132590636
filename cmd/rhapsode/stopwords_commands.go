package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"rhapsode/internal/config"
	"rhapsode/internal/stopwords"
)

func newStopwordsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stopwords",
		Short: "Stopword list utilities",
	}

	cmd.AddCommand(newStopwordsListCommand(ctx))
	cmd.AddCommand(newStopwordsRefreshCommand(ctx))

	return cmd
}

func newStopwordsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the active stopword list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			set, origin, err := newCatalog(cfg, logger).Resolve(cmd.Context())
			if err != nil {
				return err
			}
			words := set.Words()

			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"origin": origin,
					"count":  len(words),
					"words":  words,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Origin: %s\n", origin)
			fmt.Fprintf(out, "Words: %d\n", len(words))
			rows := make([][]string, 0, len(words))
			for i, word := range words {
				rows = append(rows, []string{strconv.Itoa(i + 1), word})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "WORD"}, rows, []columnAlignment{alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the list as JSON")
	return cmd
}

func newStopwordsRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Force a download of the remote stopword list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			path, err := newCatalog(cfg, logger).Refresh(cmd.Context())
			if err != nil {
				return err
			}
			set, err := stopwords.FromFile(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refreshed %d words into %s\n", len(set), path)
			return nil
		},
	}
}

func newCatalog(cfg *config.Config, logger *slog.Logger) *stopwords.Catalog {
	return stopwords.NewCatalog(
		cfg.Stopwords.Path,
		cfg.Stopwords.CacheDir,
		cfg.Stopwords.DownloadURL,
		cfg.StopwordsDownloadTimeout(),
		logger,
	)
}
