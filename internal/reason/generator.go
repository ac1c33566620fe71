// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reason

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/tomtom215/oscarmatch/internal/logging"
	"github.com/tomtom215/oscarmatch/internal/models"
	"github.com/tomtom215/oscarmatch/internal/textgen"
)

// GeneratorConfig tunes reason generation.
type GeneratorConfig struct {
	// Timeout bounds one generation call. On expiry the fallback is used.
	Timeout time.Duration

	MaxOutputTokens int
	Temperature     float64

	// MinLength is the number of characters a trimmed response must exceed.
	MinLength int
}

// DefaultGeneratorConfig returns the production settings.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Timeout:         8 * time.Second,
		MaxOutputTokens: 100,
		Temperature:     0.7,
		MinLength:       10,
	}
}

// Result is a generated reason and where it came from.
type Result struct {
	Text   string
	Source models.ReasonSource
}

// Generator writes reasons with a text generator and falls back to the
// deterministic template on any failure.
type Generator struct {
	text   textgen.Generator
	cfg    GeneratorConfig
	logger zerolog.Logger
}

// NewGenerator creates a generator. A nil text generator always falls back.
func NewGenerator(text textgen.Generator, cfg GeneratorConfig) *Generator {
	if text == nil {
		text = textgen.Disabled{}
	}
	return &Generator{
		text:   text,
		cfg:    cfg,
		logger: logging.WithComponent("reason"),
	}
}

// Generate returns a reason for movie. It never fails.
func (g *Generator) Generate(ctx context.Context, movie *models.Movie, prefs *models.Preferences, score int) Result {
	if text, ok := g.generate(ctx, movie, prefs, score); ok {
		return Result{Text: text, Source: models.ReasonFromLLM}
	}
	return Result{Text: Fallback(movie, prefs), Source: models.ReasonFromFallback}
}

func (g *Generator) generate(ctx context.Context, movie *models.Movie, prefs *models.Preferences, score int) (string, bool) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	prompt := BuildPrompt(movie, prefs, score)
	resp, err := g.text.Generate(ctx, textgen.Request{
		SystemInstruction: prompt.System,
		UserPrompt:        prompt.User,
		MaxOutputTokens:   g.cfg.MaxOutputTokens,
		Temperature:       g.cfg.Temperature,
	})
	logger := logging.Annotate(ctx, g.logger.With()).Str("movie_id", movie.ID).Logger()
	if err != nil {
		logger.Debug().Err(err).Msg("Text generation failed, using fallback reason")
		return "", false
	}

	text := strings.TrimSpace(resp.Text)
	if utf8.RuneCountInString(text) <= g.cfg.MinLength {
		logger.Debug().Int("length", utf8.RuneCountInString(text)).Msg("Generated reason too short, using fallback")
		return "", false
	}
	return text, true
}
