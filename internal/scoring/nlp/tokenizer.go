// Package nlp provides the external language capabilities the scoring
// engine consumes: tokenization, grammar checking, sentiment and language
// detection.
package nlp

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// WordTokenizer produces lowercase word tokens and sentence splits.
// Sentence boundaries come from the embedded English Punkt model, so
// abbreviations like "Mr." do not end a sentence.
type WordTokenizer struct {
	seg *sentences.DefaultSentenceTokenizer
}

func NewWordTokenizer() (*WordTokenizer, error) {
	seg, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load sentence model: %w", err)
	}
	return &WordTokenizer{seg: seg}, nil
}

// Words lowercases the text and strips leading and trailing punctuation
// from each whitespace-separated token. Interior apostrophes survive, so
// "don't" stays one word.
func (t *WordTokenizer) Words(_ context.Context, text string) ([]string, error) {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// Sentences keeps original casing and drops whitespace-only segments.
func (t *WordTokenizer) Sentences(_ context.Context, text string) ([]string, error) {
	segs := t.seg.Tokenize(text)
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		if txt := strings.TrimSpace(s.Text); txt != "" {
			out = append(out, txt)
		}
	}
	return out, nil
}
