package scoring

import (
	"fmt"

	"github.com/intro-coach/introcoach-api/internal/rubric"
)

// GrammarMethod records which grammar path actually produced the score.
type GrammarMethod string

const (
	GrammarMethodRemote    GrammarMethod = "languagetool"
	GrammarMethodHeuristic GrammarMethod = "basic"
)

// Report is the result of one analysis. The json-tagged fields are the wire
// format; the rest are diagnostics for callers and tests.
type Report struct {
	OverallScore     int                         `json:"overall_score"`
	CriterionScores  map[rubric.Criterion]int    `json:"criterion_scores"`
	DetailedFeedback map[rubric.Criterion]string `json:"detailed_feedback"`
	WordCount        int                         `json:"word_count"`
	SentenceCount    int                         `json:"sentence_count"`

	GrammarMethod       GrammarMethod `json:"-"`
	EngagementDefaulted bool          `json:"-"`
}

func (e *Engine) feedback(scores map[rubric.Criterion]int, tier string, method GrammarMethod) map[rubric.Criterion]string {
	msg := func(c rubric.Criterion, text string) string {
		return fmt.Sprintf("Score: %d/%d - %s", scores[c], e.rubric.Weights[c], text)
	}
	salText := "No appropriate salutation found"
	if tier != "" {
		salText = fmt.Sprintf("Used %s level salutation", tier)
	}
	gramText := "Language accuracy (Basic Check)"
	if method == GrammarMethodRemote {
		gramText = "Language accuracy (Public Server)"
	}
	return map[rubric.Criterion]string{
		rubric.Salutation:      msg(rubric.Salutation, salText),
		rubric.KeywordPresence: msg(rubric.KeywordPresence, "Includes essential personal details"),
		rubric.Flow:            msg(rubric.Flow, "Proper introduction structure"),
		rubric.SpeechRate:      msg(rubric.SpeechRate, "Appropriate pacing"),
		rubric.Grammar:         msg(rubric.Grammar, gramText),
		rubric.Vocabulary:      msg(rubric.Vocabulary, "Word variety"),
		rubric.Clarity:         msg(rubric.Clarity, "Clear expression"),
		rubric.Engagement:      msg(rubric.Engagement, "Positive tone"),
	}
}
