package nlp

import (
	"context"

	"github.com/jonreiter/govader"
)

// Vader scores sentiment locally with a VADER analyzer. No network, no
// model download.
type Vader struct {
	a *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{a: govader.NewSentimentIntensityAnalyzer()}
}

// Positivity returns the positive share of the polarity scores.
func (v *Vader) Positivity(_ context.Context, text string) (float64, error) {
	return v.a.PolarityScores(text).Positive, nil
}
