package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/intro-coach/introcoach-api/internal/rubric"
	"github.com/intro-coach/introcoach-api/internal/scoring"
	"github.com/intro-coach/introcoach-api/internal/scoring/nlp"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "scorectl",
		Usage: "score a self-introduction transcript and print the report as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   "-",
				Usage:   "transcript file, - reads stdin",
			},
			&cli.StringFlag{
				Name:  "rubric",
				Usage: "YAML rubric override",
			},
			&cli.Float64Flag{
				Name:    "duration",
				Aliases: []string{"d"},
				Value:   52,
				Usage:   "assumed speaking time in seconds",
			},
			&cli.StringFlag{
				Name:  "languagetool",
				Usage: "LanguageTool base URL, empty runs the built-in grammar check",
			},
			&cli.StringFlag{
				Name:  "lang",
				Value: "en-US",
				Usage: "LanguageTool language code",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Value: true,
				Usage: "indent the JSON report",
			},
		},
		Action: scoreAction,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func scoreAction(c *cli.Context) error {
	transcript, err := readTranscript(c.String("file"))
	if err != nil {
		return err
	}
	if strings.TrimSpace(transcript) == "" {
		return fmt.Errorf("transcript is empty")
	}

	rb := rubric.Default()
	if path := c.String("rubric"); path != "" {
		rb, err = rubric.LoadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load rubric: %w", err)
		}
	}
	rb.DurationSec = c.Float64("duration")

	tok, err := nlp.NewWordTokenizer()
	if err != nil {
		return fmt.Errorf("failed to initialize tokenizer: %w", err)
	}
	opts := []scoring.Option{scoring.WithSentimentScorer(nlp.NewVader())}
	if base := c.String("languagetool"); base != "" {
		opts = append(opts, scoring.WithGrammarChecker(nlp.NewLanguageTool(base, c.String("lang"))))
	}
	engine, err := scoring.New(rb, tok, opts...)
	if err != nil {
		return err
	}

	rep, err := engine.Analyze(c.Context, transcript)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	// Diagnostics go to stderr so stdout stays parseable.
	fmt.Fprintf(os.Stderr, "words: %d, sentences: %d, grammar check: %s\n",
		rep.WordCount, rep.SentenceCount, rep.GrammarMethod)

	var out []byte
	if c.Bool("pretty") {
		out, err = json.MarshalIndent(rep, "", "  ")
	} else {
		out, err = json.Marshal(rep)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func readTranscript(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	return string(data), nil
}
