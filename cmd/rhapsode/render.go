package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"rhapsode/internal/analysis"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

// renderReport prints the human-readable analysis report: source and run
// identifiers, the per-stage word-count table, the score table, and a
// one-line verdict.
func renderReport(w io.Writer, report *analysis.Report) {
	colorize := shouldColorize(w)

	fmt.Fprintf(w, "Source: %s\n", report.SourceURL)
	fmt.Fprintf(w, "Run: %s\n\n", report.RunID)

	for _, line := range renderSectionHeader("Cleaning stages", colorize) {
		fmt.Fprintln(w, line)
	}
	stageRows := make([][]string, 0, len(report.Stages)+1)
	stageRows = append(stageRows, []string{"fetch", strconv.Itoa(report.FetchedWords)})
	for _, stage := range report.Stages {
		stageRows = append(stageRows, []string{stage.Name, strconv.Itoa(stage.Words)})
	}
	fmt.Fprintln(w, renderTable([]string{"STAGE", "WORDS"}, stageRows, []columnAlignment{alignLeft, alignRight}))
	fmt.Fprintln(w)

	for _, line := range renderSectionHeader("Sentiment", colorize) {
		fmt.Fprintln(w, line)
	}
	scoreRows := [][]string{
		{"negative", formatRatio(report.Scores.Negative)},
		{"neutral", formatRatio(report.Scores.Neutral)},
		{"positive", formatRatio(report.Scores.Positive)},
		{"compound", formatCompound(report.Scores.Compound)},
	}
	fmt.Fprintln(w, renderTable([]string{"METRIC", "SCORE"}, scoreRows, []columnAlignment{alignLeft, alignRight}))
	fmt.Fprintln(w)

	fmt.Fprintln(w, renderSummaryLine(report, colorize))
}

func renderSummaryLine(report *analysis.Report, colorize bool) string {
	label := report.Scores.Label()
	base := fmt.Sprintf("Overall %s (compound %s) across %d words in %s",
		label, formatCompound(report.Scores.Compound), report.AnalyzedWords,
		report.Elapsed.Round(time.Millisecond))
	if !colorize {
		return base
	}
	var color string
	switch label {
	case "positive":
		color = ansiGreen
	case "negative":
		color = ansiRed
	default:
		color = ansiBlue
	}
	return color + base + ansiReset
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatCompound(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
