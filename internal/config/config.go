package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	Env      string
	Debug    bool

	CORSOrigins []string

	// LanguageToolURL empty means the remote checker is disabled and
	// grammar runs on the built-in heuristic.
	LanguageToolURL  string
	LanguageToolLang string

	DefaultDurationSec  int
	MaxTranscriptLength int

	// RubricPath points at an optional YAML rubric override.
	RubricPath string

	EnableLanguageGuard bool
}

// FromEnv reads configuration from the environment, loading a .env file
// first when one exists.
func FromEnv() Config {
	_ = godotenv.Load()

	env := envOr("APP_ENV", "development")
	ltURL := "https://api.languagetool.org"
	if v, ok := os.LookupEnv("LANGUAGETOOL_URL"); ok {
		ltURL = strings.TrimSpace(v)
	}
	return Config{
		HTTPAddr:            envOr("HTTP_ADDR", ":8080"),
		Env:                 env,
		Debug:               envBool("DEBUG", env == "development"),
		CORSOrigins:         csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:8000"),
		LanguageToolURL:     ltURL,
		LanguageToolLang:    envOr("LANGUAGETOOL_LANG", "en-US"),
		DefaultDurationSec:  envInt("DEFAULT_DURATION_SEC", 52),
		MaxTranscriptLength: envInt("MAX_TRANSCRIPT_LENGTH", 5000),
		RubricPath:          os.Getenv("RUBRIC_PATH"),
		EnableLanguageGuard: envBool("ENABLE_LANGUAGE_GUARD", false),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
