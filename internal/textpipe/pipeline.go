package textpipe

import (
	"log/slog"

	"rhapsode/internal/logging"
)

// Options selects which transforms the pipeline applies and how.
type Options struct {
	HeaderMarker   string
	TranslatorTags []string
	Modernize      bool
}

// Stage pairs a transform with the name it reports under.
type Stage struct {
	Name      string
	Transform func(string) string
}

// StageResult records the word count remaining after one stage ran.
type StageResult struct {
	Name  string `json:"name"`
	Words int    `json:"words"`
}

// Pipeline applies the cleaning stages in their fixed order.
type Pipeline struct {
	stages []Stage
	logger *slog.Logger
}

// New assembles the standard cleaning pipeline. The stage order is load
// bearing: heading removal consumes the line structure that later stages
// destroy, and whitespace collapse has to follow every stage that leaves
// gaps behind.
func New(opts Options, logger *slog.Logger) *Pipeline {
	stages := []Stage{
		{
			Name: "strip-book-headers",
			Transform: func(text string) string {
				return StripBookHeaders(text, opts.HeaderMarker)
			},
		},
		{Name: "strip-digits", Transform: StripDigits},
		{Name: "strip-brackets", Transform: StripBrackets},
		{
			Name: "strip-translator-tags",
			Transform: func(text string) string {
				return StripLiterals(text, opts.TranslatorTags)
			},
		},
		{Name: "collapse-whitespace", Transform: CollapseWhitespace},
	}
	if opts.Modernize {
		stages = append(stages, Stage{Name: "modernize", Transform: Modernize})
	}

	return &Pipeline{
		stages: stages,
		logger: logging.NewComponentLogger(logger, "textpipe"),
	}
}

// Run feeds text through every stage and returns the cleaned result together
// with the per-stage word-count trail.
func (p *Pipeline) Run(text string) (string, []StageResult) {
	results := make([]StageResult, 0, len(p.stages))
	for _, stage := range p.stages {
		text = stage.Transform(text)
		words := WordCount(text)
		results = append(results, StageResult{Name: stage.Name, Words: words})
		p.logger.Debug("stage complete",
			logging.String(logging.FieldPhase, stage.Name),
			logging.Int(logging.FieldWords, words))
	}
	return text, results
}
