package categorizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"spendwise-backend/internal/ai"
	"spendwise-backend/internal/log"
	"spendwise-backend/internal/models"
)

func TestKeywordCategory(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Paid for zomato order", models.CategoryFood},
		{"monthly pg rent", models.CategoryRent},
		{"xyz123", models.CategoryOther},
		{"Netflix subscription", models.CategoryBills},
		{"Electricity bill", models.CategoryBills},
		{"Doctor visit", models.CategoryHealth},
		{"Amazon shoes", models.CategoryShopping},
		{"Bought medicine at pharmacy", models.CategoryHealth},
		{"UBER to airport", models.CategoryTravel},
		{"Spotify", models.CategoryEntertainment},
		{"", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordCategory(tt.description))
		})
	}
}

func TestCategorize_UsesModelAnswer(t *testing.T) {
	gen := &ai.Static{Text: " entertainment.\n"}
	c := New(gen, time.Second, log.Discard())

	assert.Equal(t, models.CategoryEntertainment, c.Categorize(context.Background(), "movie night"))

	prompts := gen.Prompts()
	if assert.Len(t, prompts, 1) {
		assert.Contains(t, prompts[0], `"movie night"`)
		assert.Contains(t, prompts[0], "Food, Travel, Rent, Bills, Entertainment, Health, Shopping, Other")
	}
}

func TestCategorize_FallsBackOnError(t *testing.T) {
	c := New(&ai.Static{Err: errors.New("quota exceeded")}, time.Second, log.Discard())
	assert.Equal(t, models.CategoryFood, c.Categorize(context.Background(), "Paid for zomato order"))
}

func TestCategorize_FallsBackOnUnknownLabel(t *testing.T) {
	c := New(&ai.Static{Text: "Groceries and household"}, time.Second, log.Discard())
	assert.Equal(t, models.CategoryRent, c.Categorize(context.Background(), "monthly pg rent"))
}

func TestCategorize_OfflineGenerator(t *testing.T) {
	c := New(nil, 0, log.Discard())
	assert.Equal(t, models.CategoryOther, c.Categorize(context.Background(), "xyz123"))
}

type slowGenerator struct{}

func (slowGenerator) Generate(ctx context.Context, _ string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(5 * time.Second):
		return "Food", nil
	}
}

func TestCategorize_TimeoutFallsBack(t *testing.T) {
	c := New(slowGenerator{}, 20*time.Millisecond, log.Discard())

	start := time.Now()
	got := c.Categorize(context.Background(), "Electricity bill")

	assert.Equal(t, models.CategoryBills, got)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCategorize_AlwaysReturnsAllowedLabel(t *testing.T) {
	c := New(ai.Offline{}, 0, log.Discard())
	for _, desc := range []string{"chai", "rent", "🙂", "random words here", "BUS pass"} {
		_, ok := models.NormalizeCategory(c.Categorize(context.Background(), desc))
		assert.True(t, ok, desc)
	}
}
