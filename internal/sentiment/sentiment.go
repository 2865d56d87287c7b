// Package sentiment scores transcript text with the VADER lexicon/rule
// analyzer. Scoring is a pure function of the text: the same input always
// produces the same compound score.
package sentiment

import "github.com/jonreiter/govader"

// Analyzer wraps a VADER analyzer instance. Construction loads the lexicon
// once; the instance is safe to reuse across invocations.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the normalized compound polarity of text, in
// [-1.0, 1.0]. Negative means negative sentiment, positive means positive,
// values near zero are neutral.
func (a *Analyzer) Compound(text string) float64 {
	return a.vader.PolarityScores(text).Compound
}
