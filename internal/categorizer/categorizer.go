// Package categorizer assigns one of the fixed expense categories to a
// free-text description.
package categorizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"spendwise-backend/internal/ai"
	"spendwise-backend/internal/log"
	"spendwise-backend/internal/models"
)

const (
	sourceModel   = "model"
	sourceKeyword = "keyword"
)

// Categorizer asks the text generator for a label and falls back to keyword
// matching when the generator fails, times out or answers outside the label set.
type Categorizer struct {
	gen     ai.Generator
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a Categorizer. A non-positive timeout means no extra deadline.
func New(gen ai.Generator, timeout time.Duration, logger *slog.Logger) *Categorizer {
	if gen == nil {
		gen = ai.Offline{}
	}
	return &Categorizer{
		gen:     gen,
		timeout: timeout,
		logger:  log.WithComponent(logger, log.ComponentCategorizer),
	}
}

// Categorize always returns a valid category.
func (c *Categorizer) Categorize(ctx context.Context, description string) string {
	category, err := c.fromModel(ctx, description)
	if err == nil {
		c.logger.DebugContext(ctx, "expense categorized",
			slog.String(log.FieldCategory, category),
			slog.String(log.FieldSource, sourceModel))
		return category
	}

	category = KeywordCategory(description)
	c.logger.InfoContext(ctx, "model categorization unavailable, used keyword fallback",
		slog.String(log.FieldCategory, category),
		slog.String(log.FieldSource, sourceKeyword),
		slog.String(log.FieldError, err.Error()))
	return category
}

func (c *Categorizer) fromModel(ctx context.Context, description string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	answer, err := c.gen.Generate(ctx, Prompt(description))
	if err != nil {
		return "", err
	}

	label := strings.Trim(strings.TrimSpace(answer), "\"'*`.")
	category, ok := models.NormalizeCategory(label)
	if !ok {
		return "", fmt.Errorf("%w: unexpected label %q", ai.ErrUpstreamUnavailable, answer)
	}
	return category, nil
}

// Prompt builds the single-label classification prompt.
func Prompt(description string) string {
	return fmt.Sprintf(`Categorize this expense into exactly ONE of these categories: %s.
Description: %q
Return only the category name, nothing else.`, strings.Join(models.Categories, ", "), description)
}
