package nlp

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LocaleGuard rejects text whose detected language differs from the
// expected locale. Detection below lingua's confidence bar passes through,
// so short or ambiguous transcripts are never rejected.
type LocaleGuard struct {
	detector lingua.LanguageDetector
	want     lingua.Language
}

// NewLocaleGuard builds a guard for a BCP 47 style locale tag such as
// "en-US"; only the primary subtag matters.
func NewLocaleGuard(locale string) (*LocaleGuard, error) {
	want, err := languageFor(locale)
	if err != nil {
		return nil, err
	}
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English, lingua.Spanish, lingua.French, lingua.German,
			lingua.Portuguese, lingua.Hindi, lingua.Chinese, lingua.Arabic,
		).
		Build()
	return &LocaleGuard{detector: detector, want: want}, nil
}

// Verify returns an error when the text is confidently detected as a
// different language.
func (g *LocaleGuard) Verify(text string) error {
	detected, ok := g.detector.DetectLanguageOf(text)
	if !ok || detected == g.want {
		return nil
	}
	return fmt.Errorf("transcript appears to be %s, expected %s", detected, g.want)
}

func languageFor(locale string) (lingua.Language, error) {
	base := strings.ToLower(strings.SplitN(locale, "-", 2)[0])
	switch base {
	case "en":
		return lingua.English, nil
	case "es":
		return lingua.Spanish, nil
	case "fr":
		return lingua.French, nil
	case "de":
		return lingua.German, nil
	case "pt":
		return lingua.Portuguese, nil
	case "hi":
		return lingua.Hindi, nil
	case "zh":
		return lingua.Chinese, nil
	case "ar":
		return lingua.Arabic, nil
	default:
		return lingua.Unknown, fmt.Errorf("unsupported locale %q", locale)
	}
}
