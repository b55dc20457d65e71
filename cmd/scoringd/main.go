package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/intro-coach/introcoach-api/internal/api/http"
	"github.com/intro-coach/introcoach-api/internal/config"
	appmw "github.com/intro-coach/introcoach-api/internal/middleware"
	"github.com/intro-coach/introcoach-api/internal/rubric"
	"github.com/intro-coach/introcoach-api/internal/scoring"
	"github.com/intro-coach/introcoach-api/internal/scoring/nlp"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- Rubric ---
	rb := rubric.Default()
	if cfg.RubricPath != "" {
		var err error
		rb, err = rubric.LoadFile(cfg.RubricPath)
		if err != nil {
			log.Fatalf("rubric load failed: %v", err)
		}
	}
	// Speaking duration is operational config, never rubric data.
	rb.DurationSec = float64(cfg.DefaultDurationSec)

	// --- Engine ---
	tok, err := nlp.NewWordTokenizer()
	if err != nil {
		log.Fatalf("tokenizer init failed: %v", err)
	}

	grammar := "basic"
	opts := []scoring.Option{scoring.WithSentimentScorer(nlp.NewVader())}
	if cfg.LanguageToolURL != "" {
		opts = append(opts, scoring.WithGrammarChecker(nlp.NewLanguageTool(cfg.LanguageToolURL, cfg.LanguageToolLang)))
		grammar = "languagetool"
	}

	engine, err := scoring.New(rb, tok, opts...)
	if err != nil {
		log.Fatalf("engine init failed: %v", err)
	}

	var guard api.LocaleVerifier
	if cfg.EnableLanguageGuard {
		g, err := nlp.NewLocaleGuard(cfg.LanguageToolLang)
		if err != nil {
			log.Fatalf("language guard init failed: %v", err)
		}
		guard = g
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(appmw.MetricsMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/analyze", api.AnalyzeHandler(engine, cfg.MaxTranscriptLength, guard))
	r.Get("/health", api.HealthHandler(cfg.Env, cfg.Debug))
	r.Get("/config", api.ConfigHandler(cfg))
	r.Get("/metrics", appmw.MetricsHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s (env=%s, grammar=%s)", cfg.HTTPAddr, cfg.Env, grammar)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
