// Package ai wraps the external text-generation service used for expense
// categorization and coaching.
package ai

import (
	"context"
	"errors"
	"sync"
)

// ErrUpstreamUnavailable is returned when the model could not produce an answer.
var ErrUpstreamUnavailable = errors.New("text generation unavailable")

// Generator turns a prompt into free-form text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Offline is the Generator used when no API key is configured. Every call fails
// with ErrUpstreamUnavailable so callers take their local fallback.
type Offline struct{}

func (Offline) Generate(context.Context, string) (string, error) {
	return "", ErrUpstreamUnavailable
}

// Static is a deterministic Generator for tests and local runs.
type Static struct {
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

func (s *Static) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Text, nil
}

// Prompts returns every prompt received so far.
func (s *Static) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.prompts))
	copy(out, s.prompts)
	return out
}
