package scoring

import "strings"

// scoreSalutation returns the first matching tier's score and name, walking
// tiers in rank order. No match scores zero.
func (e *Engine) scoreSalutation(lower string) (int, string) {
	for _, t := range e.rubric.SalutationTiers {
		for _, kw := range t.Keywords {
			if strings.Contains(lower, kw) {
				return t.Score, t.Name
			}
		}
	}
	return 0, ""
}

// scoreKeywords awards points per contained keyword. Matching is plain
// substring containment, so "classic" satisfies "class".
func (e *Engine) scoreKeywords(lower string) int {
	must := 0
	for _, kw := range e.rubric.MustHave {
		if strings.Contains(lower, kw) {
			must += e.rubric.MustHavePoints
		}
	}
	good := 0
	for _, kw := range e.rubric.GoodToHave {
		if strings.Contains(lower, kw) {
			good += e.rubric.GoodToHavePoints
		}
	}
	if good > e.rubric.GoodToHaveCap {
		good = e.rubric.GoodToHaveCap
	}
	return must + good
}

// scoreFlow awards the bonus when the first sentence opens with a greeting
// and the last closes with gratitude. Needs at least two sentences.
func (e *Engine) scoreFlow(sents []string) int {
	if len(sents) < 2 {
		return 0
	}
	first := strings.ToLower(sents[0])
	last := strings.ToLower(sents[len(sents)-1])
	if containsAny(first, e.rubric.OpeningPhrases) && containsAny(last, e.rubric.ClosingPhrases) {
		return e.rubric.FlowBonus
	}
	return 0
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
