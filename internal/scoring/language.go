package scoring

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// scoreGrammar prefers the external checker and falls back to the heuristic
// when the capability is absent or fails. The returned method names the
// path that actually ran.
func (e *Engine) scoreGrammar(ctx context.Context, transcript string, sents []string, wordCount int) (int, GrammarMethod) {
	if e.grammar != nil {
		if issues, err := e.grammar.Check(ctx, transcript); err == nil {
			q := grammarQuality(issues, wordCount)
			switch {
			case q >= 0.9:
				return 10, GrammarMethodRemote
			case q >= 0.7:
				return 8, GrammarMethodRemote
			case q >= 0.5:
				return 6, GrammarMethodRemote
			case q >= 0.3:
				return 4, GrammarMethodRemote
			default:
				return 2, GrammarMethodRemote
			}
		}
	}
	return heuristicGrammar(sents, wordCount), GrammarMethodHeuristic
}

// heuristicGrammar counts sentences missing terminal punctuation or an
// uppercase start. Its score floor is 4, one bucket above the remote
// checker's.
func heuristicGrammar(sents []string, wordCount int) int {
	issues := 0
	for _, s := range sents {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if last, _ := utf8.DecodeLastRuneInString(s); last != '.' && last != '!' && last != '?' {
			issues++
		}
		if first, _ := utf8.DecodeRuneInString(s); !unicode.IsUpper(first) {
			issues++
		}
	}
	q := grammarQuality(issues, wordCount)
	switch {
	case q >= 0.9:
		return 10
	case q >= 0.7:
		return 8
	case q >= 0.5:
		return 6
	default:
		return 4
	}
}

// grammarQuality maps issues per hundred words onto [0, 1]. A transcript
// with no words counts as clean.
func grammarQuality(issues, wordCount int) float64 {
	if wordCount == 0 {
		return 1
	}
	per100 := float64(issues) / float64(wordCount) * 100
	if per100 > 10 {
		per100 = 10
	}
	return 1 - per100/10
}

// scoreVocabulary rates the type-token ratio of the word tokens. TTR skews
// high on short transcripts; that bias is part of the scale.
func (e *Engine) scoreVocabulary(words []string) int {
	if len(words) == 0 {
		return 2
	}
	distinct := make(map[string]struct{}, len(words))
	for _, w := range words {
		distinct[w] = struct{}{}
	}
	ttr := float64(len(distinct)) / float64(len(words))
	switch {
	case ttr >= 0.9:
		return 10
	case ttr >= 0.7:
		return 8
	case ttr >= 0.5:
		return 6
	case ttr >= 0.3:
		return 4
	default:
		return 2
	}
}
