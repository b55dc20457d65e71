package rubric

import "fmt"

// Criterion names one scored dimension of a self-introduction.
type Criterion string

const (
	Salutation      Criterion = "salutation"
	KeywordPresence Criterion = "keyword_presence"
	Flow            Criterion = "flow"
	SpeechRate      Criterion = "speech_rate"
	Grammar         Criterion = "grammar"
	Vocabulary      Criterion = "vocabulary"
	Clarity         Criterion = "clarity"
	Engagement      Criterion = "engagement"
)

// All lists every criterion in report order.
var All = []Criterion{
	Salutation, KeywordPresence, Flow, SpeechRate,
	Grammar, Vocabulary, Clarity, Engagement,
}

// SalutationTier is one greeting level. Tiers are matched in slice order,
// highest rank first.
type SalutationTier struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Score    int      `yaml:"score" json:"score"`
}

// SpeechBand is one pacing band. Max is the band's inclusive upper bound in
// words per minute; Max <= 0 marks the unbounded top band. Bands are ordered
// ascending by Max with the unbounded band last.
type SpeechBand struct {
	Name  string  `yaml:"name" json:"name"`
	Max   float64 `yaml:"max" json:"max"`
	Score int     `yaml:"score" json:"score"`
}

type Rubric struct {
	SalutationTiers []SalutationTier `yaml:"salutation_tiers" json:"salutation_tiers"`

	MustHave         []string `yaml:"must_have" json:"must_have"`
	GoodToHave       []string `yaml:"good_to_have" json:"good_to_have"`
	MustHavePoints   int      `yaml:"must_have_points" json:"must_have_points"`
	GoodToHavePoints int      `yaml:"good_to_have_points" json:"good_to_have_points"`
	GoodToHaveCap    int      `yaml:"good_to_have_cap" json:"good_to_have_cap"`

	OpeningPhrases []string `yaml:"opening_phrases" json:"opening_phrases"`
	ClosingPhrases []string `yaml:"closing_phrases" json:"closing_phrases"`
	FlowBonus      int      `yaml:"flow_bonus" json:"flow_bonus"`

	SpeechBands []SpeechBand `yaml:"speech_bands" json:"speech_bands"`
	FillerWords []string     `yaml:"filler_words" json:"filler_words"`

	// DurationSec is the assumed speaking time used to derive words per
	// minute. Operational config, not rubric data, so it is not settable
	// from a rubric file.
	DurationSec float64 `yaml:"-" json:"duration_sec"`

	// Weights are per-criterion maxima used for display and validation.
	Weights map[Criterion]int `yaml:"weights" json:"weights"`
}

// Default returns the built-in scoring rubric.
func Default() Rubric {
	return Rubric{
		SalutationTiers: []SalutationTier{
			{Name: "excellent", Keywords: []string{"excited to introduce", "feeling great", "thrilled to share", "honored to be"}, Score: 5},
			{Name: "good", Keywords: []string{"good morning", "good afternoon", "good evening", "good day", "hello everyone"}, Score: 4},
			{Name: "normal", Keywords: []string{"hi", "hello", "hey"}, Score: 2},
		},
		MustHave:         []string{"name", "age", "class", "school", "family", "hobbies"},
		GoodToHave:       []string{"from", "goal", "dream", "fun fact", "unique", "strength", "achievement"},
		MustHavePoints:   4,
		GoodToHavePoints: 2,
		GoodToHaveCap:    10,
		OpeningPhrases:   []string{"hello", "hi", "good morning", "good afternoon", "good evening"},
		ClosingPhrases:   []string{"thank", "thanks", "appreciate"},
		FlowBonus:        5,
		SpeechBands: []SpeechBand{
			{Name: "too_slow", Max: 80, Score: 2},
			{Name: "slow", Max: 110, Score: 6},
			{Name: "ideal", Max: 140, Score: 10},
			{Name: "fast", Max: 160, Score: 6},
			{Name: "too_fast", Max: 0, Score: 2},
		},
		FillerWords: []string{
			"um", "uh", "like", "you know", "so", "actually", "basically",
			"right", "i mean", "well", "kinda", "sort of", "okay", "hmm", "ah",
		},
		DurationSec: 52,
		Weights: map[Criterion]int{
			Salutation:      5,
			KeywordPresence: 30,
			Flow:            5,
			SpeechRate:      10,
			Grammar:         10,
			Vocabulary:      10,
			Clarity:         15,
			Engagement:      15,
		},
	}
}

// Validate checks the structural invariants the scoring engine relies on:
// every criterion weighted, weights summing to 100, a positive duration and
// a speech band table that covers all rates.
func (r Rubric) Validate() error {
	sum := 0
	for _, c := range All {
		w, ok := r.Weights[c]
		if !ok {
			return fmt.Errorf("missing weight for criterion %q", c)
		}
		if w <= 0 {
			return fmt.Errorf("weight for criterion %q must be positive, got %d", c, w)
		}
		sum += w
	}
	if sum != 100 {
		return fmt.Errorf("criterion weights sum to %d, want 100", sum)
	}
	if r.DurationSec <= 0 {
		return fmt.Errorf("duration must be positive, got %g", r.DurationSec)
	}
	if len(r.SpeechBands) == 0 {
		return fmt.Errorf("no speech bands configured")
	}
	prev := 0.0
	for i, b := range r.SpeechBands {
		last := i == len(r.SpeechBands)-1
		if last {
			if b.Max > 0 {
				return fmt.Errorf("last speech band %q must be unbounded (max <= 0)", b.Name)
			}
			continue
		}
		if b.Max <= prev {
			return fmt.Errorf("speech band %q out of order: max %g not above %g", b.Name, b.Max, prev)
		}
		prev = b.Max
	}
	for _, t := range r.SalutationTiers {
		if t.Score < 0 || t.Score > r.Weights[Salutation] {
			return fmt.Errorf("salutation tier %q score %d outside 0..%d", t.Name, t.Score, r.Weights[Salutation])
		}
	}
	if r.FlowBonus < 0 || r.FlowBonus > r.Weights[Flow] {
		return fmt.Errorf("flow bonus %d outside 0..%d", r.FlowBonus, r.Weights[Flow])
	}
	if r.MustHavePoints < 0 || r.GoodToHavePoints < 0 || r.GoodToHaveCap < 0 {
		return fmt.Errorf("keyword points must not be negative")
	}
	return nil
}
