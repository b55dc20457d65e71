package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/intro-coach/introcoach-api/internal/middleware"
	"github.com/intro-coach/introcoach-api/internal/scoring"
)

// Analyzer is the scoring capability behind POST /analyze.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (*scoring.Report, error)
}

// LocaleVerifier optionally rejects transcripts in the wrong language.
type LocaleVerifier interface {
	Verify(text string) error
}

var (
	errNoTranscript = errors.New("No transcript provided")
	errInternal     = errors.New("Internal server error")
)

type analyzeReq struct {
	Transcript string `json:"transcript"`
}

// POST /analyze
// guard may be nil when the language guard is disabled.
func AnalyzeHandler(an Analyzer, maxLen int, guard LocaleVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Errorf("bad json: %v", err))
			return
		}
		if strings.TrimSpace(req.Transcript) == "" {
			respondError(w, http.StatusBadRequest, errNoTranscript)
			return
		}
		// rune count, not bytes: a multibyte transcript is not shorter
		if utf8.RuneCountInString(req.Transcript) > maxLen {
			respondError(w, http.StatusBadRequest,
				fmt.Errorf("Transcript too long. Maximum %d characters allowed.", maxLen))
			return
		}
		if guard != nil {
			if err := guard.Verify(req.Transcript); err != nil {
				respondError(w, http.StatusBadRequest, err)
				return
			}
		}

		rep, err := an.Analyze(r.Context(), req.Transcript)
		if err != nil {
			log.Printf("analyze failed: %v", err)
			middleware.IncrementAnalysesFailed()
			respondError(w, http.StatusInternalServerError, errInternal)
			return
		}
		middleware.IncrementAnalyses()
		if rep.GrammarMethod == scoring.GrammarMethodHeuristic {
			middleware.IncrementGrammarFallbacks()
		}
		if rep.EngagementDefaulted {
			middleware.IncrementEngagementDefaults()
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rep)
	}
}
