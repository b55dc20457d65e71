package nlp_test

import (
	"testing"

	"github.com/intro-coach/introcoach-api/internal/scoring/nlp"
)

func TestLocaleGuardAcceptsMatchingLanguage(t *testing.T) {
	g, err := nlp.NewLocaleGuard("en-US")
	if err != nil {
		t.Fatalf("NewLocaleGuard: %v", err)
	}
	text := "Hello everyone, my name is Sam and I am twelve years old. " +
		"I enjoy playing football with my friends after school."
	if err := g.Verify(text); err != nil {
		t.Fatalf("Verify rejected English text: %v", err)
	}
}

func TestLocaleGuardRejectsOtherLanguage(t *testing.T) {
	g, err := nlp.NewLocaleGuard("en-US")
	if err != nil {
		t.Fatalf("NewLocaleGuard: %v", err)
	}
	text := "Hola a todos, me llamo Sofía y vengo de Madrid. " +
		"Me gusta mucho jugar al fútbol con mi familia los domingos."
	if err := g.Verify(text); err == nil {
		t.Fatalf("Verify accepted Spanish text for an en locale")
	}
}

func TestLocaleGuardUnsupportedLocale(t *testing.T) {
	if _, err := nlp.NewLocaleGuard("tlh"); err == nil {
		t.Fatalf("expected error for unsupported locale")
	}
}
