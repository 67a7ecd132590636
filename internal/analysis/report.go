package analysis

import (
	"time"

	"rhapsode/internal/sentiment"
	"rhapsode/internal/textpipe"
)

// Report captures one end-to-end analysis run. Word counts trace the text
// through each phase; Stages holds the fine-grained trail including every
// cleaning transform.
type Report struct {
	RunID            string                 `json:"run_id"`
	SourceURL        string                 `json:"source_url"`
	FetchedWords     int                    `json:"fetched_words"`
	BodyWords        int                    `json:"body_words"`
	CleanedWords     int                    `json:"cleaned_words"`
	AnalyzedWords    int                    `json:"analyzed_words"`
	StopwordsRemoved bool                   `json:"stopwords_removed"`
	StopwordOrigin   string                 `json:"stopword_origin,omitempty"`
	Stages           []textpipe.StageResult `json:"stages"`
	Scores           sentiment.Scores       `json:"scores"`
	Elapsed          time.Duration          `json:"elapsed_ns"`
}
