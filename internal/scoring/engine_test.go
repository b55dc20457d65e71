package scoring_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/intro-coach/introcoach-api/internal/rubric"
	"github.com/intro-coach/introcoach-api/internal/scoring"
)

type fakeTokenizer struct {
	words []string
	sents []string
	err   error
}

func (f fakeTokenizer) Words(_ context.Context, _ string) ([]string, error) {
	return f.words, f.err
}

func (f fakeTokenizer) Sentences(_ context.Context, _ string) ([]string, error) {
	return f.sents, f.err
}

type fakeGrammar struct {
	issues int
	err    error
}

func (f fakeGrammar) Check(_ context.Context, _ string) (int, error) { return f.issues, f.err }

type fakeSentiment struct {
	pos float64
	err error
}

func (f fakeSentiment) Positivity(_ context.Context, _ string) (float64, error) {
	return f.pos, f.err
}

func newEngine(t *testing.T, r rubric.Rubric, tok scoring.Tokenizer, opts ...scoring.Option) *scoring.Engine {
	t.Helper()
	e, err := scoring.New(r, tok, opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func nWords(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("w%d", i)
	}
	return out
}

func TestAnalyzeShortIntroduction(t *testing.T) {
	tok := fakeTokenizer{
		words: []string{"hi", "my", "name", "is", "sam"},
		sents: []string{"Hi, my name is Sam."},
	}
	e := newEngine(t, rubric.Default(), tok)

	rep, err := e.Analyze(context.Background(), "Hi, my name is Sam.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	want := map[rubric.Criterion]int{
		rubric.Salutation:      2,
		rubric.KeywordPresence: 4,
		rubric.Flow:            0,
		rubric.SpeechRate:      2,
		rubric.Grammar:         10,
		rubric.Vocabulary:      10,
		rubric.Clarity:         15,
		rubric.Engagement:      9,
	}
	for c, w := range want {
		if got := rep.CriterionScores[c]; got != w {
			t.Errorf("%s = %d, want %d", c, got, w)
		}
	}
	if rep.OverallScore != 52 {
		t.Errorf("overall = %d, want 52", rep.OverallScore)
	}
	if rep.WordCount != 5 || rep.SentenceCount != 1 {
		t.Errorf("counts = %d words / %d sentences, want 5 / 1", rep.WordCount, rep.SentenceCount)
	}
	if rep.GrammarMethod != scoring.GrammarMethodHeuristic {
		t.Errorf("grammar method = %q, want heuristic", rep.GrammarMethod)
	}
	if !rep.EngagementDefaulted {
		t.Errorf("engagement should be defaulted without a sentiment scorer")
	}
	if got := rep.DetailedFeedback[rubric.Salutation]; got != "Score: 2/5 - Used normal level salutation" {
		t.Errorf("salutation feedback = %q", got)
	}
	if got := rep.DetailedFeedback[rubric.Grammar]; !strings.Contains(got, "(Basic Check)") {
		t.Errorf("grammar feedback = %q, want Basic Check marker", got)
	}
}

func TestAnalyzeClampsOverall(t *testing.T) {
	// Keyword headroom (24 must-have + 10 capped good-to-have = 34 against a
	// weight of 30) lets the raw sum pass 100 on a maxed transcript.
	transcript := "Hello everyone, I am excited to introduce my name, age, class, school, family and hobbies. " +
		"I come from a city of goal chasers, my dream is unique, a fun fact shows my strength and achievement. Thank you."
	tok := fakeTokenizer{
		words: nWords(120),
		sents: []string{"Hello everyone, I am excited to introduce myself.", "Thank you."},
	}
	r := rubric.Default()
	r.DurationSec = 60

	e := newEngine(t, r, tok,
		scoring.WithGrammarChecker(fakeGrammar{issues: 0}),
		scoring.WithSentimentScorer(fakeSentiment{pos: 0.95}),
	)
	rep, err := e.Analyze(context.Background(), transcript)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got := rep.CriterionScores[rubric.KeywordPresence]; got != 34 {
		t.Fatalf("keyword_presence = %d, want 34", got)
	}
	raw := 0
	for _, s := range rep.CriterionScores {
		raw += s
	}
	if raw <= 100 {
		t.Fatalf("raw criterion sum = %d, expected it to exceed 100", raw)
	}
	if rep.OverallScore != 100 {
		t.Fatalf("overall = %d, want clamp to 100", rep.OverallScore)
	}
	if got := rep.DetailedFeedback[rubric.Grammar]; !strings.Contains(got, "(Public Server)") {
		t.Errorf("grammar feedback = %q, want Public Server marker", got)
	}
}

func TestAnalyzeTokenizerFailureIsFatal(t *testing.T) {
	e := newEngine(t, rubric.Default(), fakeTokenizer{err: errors.New("boom")})
	if _, err := e.Analyze(context.Background(), "anything"); err == nil {
		t.Fatalf("expected error from failing tokenizer")
	}
}

func TestAnalyzeGrammarFallsBackOnError(t *testing.T) {
	tok := fakeTokenizer{
		words: nWords(10),
		sents: []string{"This is fine."},
	}
	e := newEngine(t, rubric.Default(), tok,
		scoring.WithGrammarChecker(fakeGrammar{err: errors.New("server down")}),
	)
	rep, err := e.Analyze(context.Background(), "This is fine.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.GrammarMethod != scoring.GrammarMethodHeuristic {
		t.Fatalf("grammar method = %q, want heuristic after checker error", rep.GrammarMethod)
	}
	if got := rep.CriterionScores[rubric.Grammar]; got != 10 {
		t.Fatalf("grammar = %d, want 10 for a clean sentence", got)
	}
	if got := rep.DetailedFeedback[rubric.Grammar]; !strings.Contains(got, "(Basic Check)") {
		t.Errorf("grammar feedback = %q, want Basic Check marker", got)
	}
}

func TestAnalyzeSentimentErrorScoresNeutral(t *testing.T) {
	tok := fakeTokenizer{words: nWords(10), sents: []string{"Fine."}}
	e := newEngine(t, rubric.Default(), tok,
		scoring.WithSentimentScorer(fakeSentiment{err: errors.New("no model")}),
	)
	rep, err := e.Analyze(context.Background(), "Fine.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := rep.CriterionScores[rubric.Engagement]; got != 9 {
		t.Fatalf("engagement = %d, want neutral 9", got)
	}
	if !rep.EngagementDefaulted {
		t.Fatalf("engagement defaulted flag not set")
	}
}

func TestEngagementThresholds(t *testing.T) {
	cases := []struct {
		pos  float64
		want int
	}{
		{0.95, 15},
		{0.9, 15},
		{0.7, 12},
		{0.5, 9},
		{0.3, 6},
		{0.29, 3},
		{0, 3},
	}
	tok := fakeTokenizer{words: nWords(10), sents: []string{"Fine."}}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("pos=%.2f", tc.pos), func(t *testing.T) {
			e := newEngine(t, rubric.Default(), tok,
				scoring.WithSentimentScorer(fakeSentiment{pos: tc.pos}),
			)
			rep, err := e.Analyze(context.Background(), "Fine.")
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if got := rep.CriterionScores[rubric.Engagement]; got != tc.want {
				t.Fatalf("engagement = %d, want %d", got, tc.want)
			}
			if rep.EngagementDefaulted {
				t.Fatalf("defaulted flag set despite working scorer")
			}
		})
	}
}

func TestNewRejectsBadInputs(t *testing.T) {
	if _, err := scoring.New(rubric.Default(), nil); err == nil {
		t.Fatalf("expected error for nil tokenizer")
	}
	r := rubric.Default()
	r.Weights[rubric.Flow] = 50
	if _, err := scoring.New(r, fakeTokenizer{}); err == nil {
		t.Fatalf("expected error for invalid rubric")
	}
}

func TestReportWireFormat(t *testing.T) {
	tok := fakeTokenizer{words: []string{"hello"}, sents: []string{"Hello."}}
	e := newEngine(t, rubric.Default(), tok)
	rep, err := e.Analyze(context.Background(), "Hello.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	b, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(b, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"overall_score", "criterion_scores", "detailed_feedback", "word_count", "sentence_count"} {
		if _, ok := wire[key]; !ok {
			t.Errorf("wire format missing %q", key)
		}
	}
	if _, ok := wire["GrammarMethod"]; ok {
		t.Errorf("diagnostics leaked into the wire format")
	}
	if len(wire) != 5 {
		t.Errorf("wire format has %d keys, want 5", len(wire))
	}
}
