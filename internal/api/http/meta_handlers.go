package http

import (
	"encoding/json"
	"net/http"

	"github.com/intro-coach/introcoach-api/internal/config"
)

// GET /health
func HealthHandler(env string, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":      "healthy",
			"environment": env,
			"debug":       debug,
		})
	}
}

// GET /config exposes the non-secret runtime settings for debugging.
func ConfigHandler(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"max_transcript_length": cfg.MaxTranscriptLength,
			"default_duration_sec":  cfg.DefaultDurationSec,
			"cors_origins":          cfg.CORSOrigins,
		})
	}
}
