package sentiment

import "github.com/jonreiter/govader"

// Scores holds the four polarity figures of a lexicon analysis. The JSON
// keys follow the conventional VADER output record.
type Scores struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// Compound scores at or beyond this magnitude count as polarized; the value
// is the convention recommended by the VADER authors.
const compoundThreshold = 0.05

// Label classifies the compound score as "positive", "negative", or "neutral".
func (s Scores) Label() string {
	switch {
	case s.Compound >= compoundThreshold:
		return "positive"
	case s.Compound <= -compoundThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// Analyzer scores text against a sentiment lexicon.
type Analyzer interface {
	Score(text string) Scores
}

// VADER implements Analyzer with the govader lexicon.
type VADER struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ Analyzer = (*VADER)(nil)

// NewVADER constructs the lexicon analyzer.
func NewVADER() *VADER {
	return &VADER{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score runs polarity scoring over text.
func (v *VADER) Score(text string) Scores {
	polarity := v.analyzer.PolarityScores(text)
	return Scores{
		Negative: polarity.Negative,
		Neutral:  polarity.Neutral,
		Positive: polarity.Positive,
		Compound: polarity.Compound,
	}
}
