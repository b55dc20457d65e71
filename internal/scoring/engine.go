package scoring

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/intro-coach/introcoach-api/internal/rubric"
)

// Tokenizer splits a transcript into word and sentence tokens. Words are
// lowercase with surrounding punctuation stripped; sentences keep their
// original casing.
type Tokenizer interface {
	Words(ctx context.Context, text string) ([]string, error)
	Sentences(ctx context.Context, text string) ([]string, error)
}

// GrammarChecker reports the number of grammar issues found in text.
type GrammarChecker interface {
	Check(ctx context.Context, text string) (int, error)
}

// SentimentScorer reports the positive share of text sentiment in [0, 1].
type SentimentScorer interface {
	Positivity(ctx context.Context, text string) (float64, error)
}

// Engine scores transcripts against a rubric. Immutable after New and safe
// for concurrent use.
type Engine struct {
	rubric    rubric.Rubric
	tok       Tokenizer
	grammar   GrammarChecker
	sentiment SentimentScorer
	fillers   []*regexp.Regexp
}

// Engine options

type Option func(*Engine)

// WithGrammarChecker wires an external grammar capability. Without one the
// engine runs its heuristic check.
func WithGrammarChecker(g GrammarChecker) Option { return func(e *Engine) { e.grammar = g } }

// WithSentimentScorer wires an external sentiment capability. Without one
// engagement scores its neutral default.
func WithSentimentScorer(s SentimentScorer) Option { return func(e *Engine) { e.sentiment = s } }

func New(r rubric.Rubric, tok Tokenizer, opts ...Option) (*Engine, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("rubric: %w", err)
	}
	if tok == nil {
		return nil, errors.New("tokenizer required")
	}
	e := &Engine{rubric: r, tok: tok}
	for _, o := range opts {
		o(e)
	}
	e.fillers = make([]*regexp.Regexp, 0, len(r.FillerWords))
	for _, f := range r.FillerWords {
		e.fillers = append(e.fillers, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(f))+`\b`))
	}
	return e, nil
}

// Analyze scores one transcript. Tokenization failure is the only fatal
// error; grammar and sentiment degrade per criterion instead of failing
// the analysis.
func (e *Engine) Analyze(ctx context.Context, transcript string) (*Report, error) {
	words, err := e.tok.Words(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("tokenize words: %w", err)
	}
	sents, err := e.tok.Sentences(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("split sentences: %w", err)
	}
	lower := strings.ToLower(transcript)

	salScore, tier := e.scoreSalutation(lower)
	gramScore, method := e.scoreGrammar(ctx, transcript, sents, len(words))
	engScore, defaulted := e.scoreEngagement(ctx, transcript)

	scores := map[rubric.Criterion]int{
		rubric.Salutation:      salScore,
		rubric.KeywordPresence: e.scoreKeywords(lower),
		rubric.Flow:            e.scoreFlow(sents),
		rubric.SpeechRate:      e.scoreSpeechRate(len(words)),
		rubric.Grammar:         gramScore,
		rubric.Vocabulary:      e.scoreVocabulary(words),
		rubric.Clarity:         e.scoreClarity(lower, len(words)),
		rubric.Engagement:      engScore,
	}

	total := 0
	for _, c := range rubric.All {
		total += scores[c]
	}
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return &Report{
		OverallScore:        total,
		CriterionScores:     scores,
		DetailedFeedback:    e.feedback(scores, tier, method),
		WordCount:           len(words),
		SentenceCount:       len(sents),
		GrammarMethod:       method,
		EngagementDefaulted: defaulted,
	}, nil
}
