package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"spendwise-backend/internal/config"
	"spendwise-backend/internal/log"
)

const probePrompt = "Reply with only: Gemini API is working!"

// Gemini calls the Gemini API through the genai client.
type Gemini struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGemini builds a client from the AI section of the configuration.
// cfg.Endpoint replaces the public base URL.
func NewGemini(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Endpoint != "" {
		cc.HTTPOptions.BaseURL = cfg.Endpoint
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := cfg.Model
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}

	return &Gemini{
		client: client,
		model:  model,
		logger: log.WithComponent(logger, log.ComponentAI),
	}, nil
}

// Generate sends a single-turn prompt and returns the first candidate's text as
// the model wrote it. Callers that need a normalized answer trim it themselves.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		g.logger.WarnContext(ctx, "generate content failed",
			slog.String(log.FieldModel, g.model),
			slog.Int64(log.FieldDuration, time.Since(start).Milliseconds()),
			slog.String(log.FieldError, err.Error()))
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrUpstreamUnavailable)
	}

	g.logger.DebugContext(ctx, "generate content ok",
		slog.String(log.FieldModel, g.model),
		slog.Int64(log.FieldDuration, time.Since(start).Milliseconds()))
	return text, nil
}

// firstText joins the parts of the first candidate that carries any non-blank text.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if p != nil {
				b.WriteString(p.Text)
			}
		}
		if text := b.String(); strings.TrimSpace(text) != "" {
			return text
		}
	}
	return ""
}

// Probe sends one short prompt and logs whether the model answered. It never fails.
func Probe(ctx context.Context, gen Generator, timeout time.Duration, logger *slog.Logger) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger = log.WithComponent(logger, log.ComponentAI)
	answer, err := gen.Generate(ctx, probePrompt)
	if err != nil {
		logger.Warn("text generation probe failed", slog.String(log.FieldError, err.Error()))
		return false
	}
	logger.Info("text generation probe ok", slog.String("answer", answer))
	return true
}

// FromConfig returns the live client when an API key is configured and the
// Offline generator otherwise.
func FromConfig(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (Generator, error) {
	if cfg.APIKey == "" {
		return Offline{}, nil
	}
	return NewGemini(ctx, cfg, logger)
}
