package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rhapsode/internal/config"
	"rhapsode/internal/gutenberg"
	"rhapsode/internal/logging"
	"rhapsode/internal/sentiment"
	"rhapsode/internal/stopwords"
	"rhapsode/internal/textpipe"
)

// Runner wires the fetch, clean, filter, and scoring phases together.
type Runner struct {
	cfg      *config.Config
	fetcher  gutenberg.Fetcher
	pipeline *textpipe.Pipeline
	catalog  *stopwords.Catalog
	analyzer sentiment.Analyzer
	logger   *slog.Logger
}

// Option overrides a Runner collaborator, mainly for tests.
type Option func(*Runner)

// WithFetcher substitutes the download client.
func WithFetcher(fetcher gutenberg.Fetcher) Option {
	return func(r *Runner) {
		if fetcher != nil {
			r.fetcher = fetcher
		}
	}
}

// WithAnalyzer substitutes the sentiment analyzer.
func WithAnalyzer(analyzer sentiment.Analyzer) Option {
	return func(r *Runner) {
		if analyzer != nil {
			r.analyzer = analyzer
		}
	}
}

// WithCatalog substitutes the stopword catalog.
func WithCatalog(catalog *stopwords.Catalog) Option {
	return func(r *Runner) {
		if catalog != nil {
			r.catalog = catalog
		}
	}
}

// New builds a Runner from configuration, constructing any collaborator not
// supplied through options.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Runner {
	runner := &Runner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "analysis"),
	}
	for _, opt := range opts {
		opt(runner)
	}

	if runner.fetcher == nil {
		runner.fetcher = gutenberg.New(
			gutenberg.WithTimeout(cfg.RequestTimeout()),
			gutenberg.WithUserAgent(cfg.Source.UserAgent),
		)
	}
	if runner.pipeline == nil {
		runner.pipeline = textpipe.New(textpipe.Options{
			HeaderMarker:   cfg.Cleaning.HeaderMarker,
			TranslatorTags: cfg.Cleaning.TranslatorTags,
			Modernize:      cfg.Cleaning.Modernize,
		}, logger)
	}
	if runner.catalog == nil && cfg.Stopwords.Enabled {
		runner.catalog = stopwords.NewCatalog(
			cfg.Stopwords.Path,
			cfg.Stopwords.CacheDir,
			cfg.Stopwords.DownloadURL,
			cfg.StopwordsDownloadTimeout(),
			logger,
		)
	}
	if runner.analyzer == nil {
		runner.analyzer = sentiment.NewVADER()
	}
	return runner
}

// Run executes the full analysis and returns its report. The first failing
// phase terminates the run.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	runID := uuid.NewString()
	logger := r.logger.With(logging.String(logging.FieldRunID, runID))
	report := &Report{RunID: runID, SourceURL: r.cfg.Source.URL}
	start := time.Now()

	logger.Info("downloading text", logging.String("url", r.cfg.Source.URL))
	text, err := r.fetcher.FetchText(ctx, r.cfg.Source.URL)
	if err != nil {
		wrapped := Wrap(ErrTransient, "fetch", "download", r.cfg.Source.URL, err)
		logger.Error("download failed",
			logging.Error(wrapped),
			logging.String(logging.FieldEventType, "fetch_failed"),
			logging.String(logging.FieldErrorHint, "check network access and source.url"))
		return nil, wrapped
	}
	report.FetchedWords = textpipe.WordCount(text)
	logger.Info("downloaded text", logging.Int(logging.FieldWords, report.FetchedWords))

	body, err := textpipe.SliceBody(text, r.cfg.Source.BodyStart, r.cfg.Source.BodyEnd)
	if err != nil {
		wrapped := Wrap(ErrValidation, "extract", "slice body", "", err)
		logger.Error("body extraction failed",
			logging.Error(wrapped),
			logging.String(logging.FieldEventType, "extract_failed"),
			logging.String(logging.FieldErrorHint, "verify source.body_start and source.body_end against the document"))
		return nil, wrapped
	}
	report.BodyWords = textpipe.WordCount(body)
	report.Stages = append(report.Stages, textpipe.StageResult{Name: "extract-body", Words: report.BodyWords})

	cleaned, stageResults := r.pipeline.Run(body)
	report.Stages = append(report.Stages, stageResults...)
	report.CleanedWords = textpipe.WordCount(cleaned)
	logger.Info("cleaned text", logging.Int(logging.FieldWords, report.CleanedWords))

	analyzed := cleaned
	if r.catalog != nil {
		set, origin, err := r.catalog.Resolve(ctx)
		if err != nil {
			wrapped := Wrap(ErrResource, "stopwords", "resolve list", "", err)
			logger.Error("stopword resolution failed",
				logging.Error(wrapped),
				logging.String(logging.FieldEventType, "stopwords_failed"),
				logging.String(logging.FieldErrorHint, "check stopwords.path and stopwords.cache_dir"))
			return nil, wrapped
		}
		analyzed = set.Filter(analyzed)
		report.StopwordsRemoved = true
		report.StopwordOrigin = origin
		words := textpipe.WordCount(analyzed)
		report.Stages = append(report.Stages, textpipe.StageResult{Name: "remove-stopwords", Words: words})
		logger.Info("removed stopwords",
			logging.Int(logging.FieldWords, words),
			logging.String("list", origin))
	}
	report.AnalyzedWords = textpipe.WordCount(analyzed)

	logger.Info("analyzing text", logging.Int(logging.FieldWords, report.AnalyzedWords))
	report.Scores = r.analyzer.Score(analyzed)
	report.Elapsed = time.Since(start)

	logger.Info("analysis complete",
		logging.Float64("neg", report.Scores.Negative),
		logging.Float64("neu", report.Scores.Neutral),
		logging.Float64("pos", report.Scores.Positive),
		logging.Float64("compound", report.Scores.Compound),
		logging.String("label", report.Scores.Label()),
		logging.Duration("elapsed", report.Elapsed))
	return report, nil
}
