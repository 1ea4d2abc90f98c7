package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spendwise-backend/internal/models"
)

func TestRecentSpending(t *testing.T) {
	expenses := []models.Expense{
		expense(120, models.CategoryFood, now.AddDate(0, 0, -1)),
		expense(80, models.CategoryFood, now.AddDate(0, 0, -29)),
		expense(500, models.CategoryRent, now.AddDate(0, 0, -10)),
		expense(700, models.CategoryTravel, now.AddDate(0, 0, -31)),
	}
	budgets := []models.Budget{budget(models.CategoryRent, 400), budget(models.CategoryFood, 300)}

	in := RecentSpending(expenses, budgets, now)

	assert.Equal(t, 3, in.Count)
	assert.Equal(t, 700.0, in.Total)
	assert.Equal(t, []CategoryTotal{
		{Category: models.CategoryRent, Total: 500},
		{Category: models.CategoryFood, Total: 200},
	}, in.ByCategory)
	assert.Equal(t, []BudgetStatus{
		{Category: models.CategoryFood, Limit: 300, Spent: 200},
		{Category: models.CategoryRent, Limit: 400, Spent: 500},
	}, in.Budgets)
}

func TestRecentSpending_Empty(t *testing.T) {
	in := RecentSpending([]models.Expense{expense(10, models.CategoryFood, now.AddDate(0, -2, 0))}, nil, now)
	assert.Zero(t, in.Count)
	assert.Zero(t, in.Total)
}

func TestCoachPrompt(t *testing.T) {
	prompt := CoachPrompt(CoachInput{
		Total:      1234.5,
		ByCategory: []CategoryTotal{{Category: models.CategoryFood, Total: 1234.5}},
		Budgets:    []BudgetStatus{{Category: models.CategoryFood, Limit: 1000, Spent: 1234.5}},
		Count:      4,
	})

	assert.Contains(t, prompt, "Total Spent: ₹1234.5")
	assert.Contains(t, prompt, "Food ₹1234.5")
	assert.Contains(t, prompt, "Food spent ₹1234.5 of ₹1000")
	assert.Contains(t, prompt, "exactly 3 bullet points")
	assert.Contains(t, prompt, "under 15 words")
}

func TestCoachPrompt_NoBudgets(t *testing.T) {
	prompt := CoachPrompt(CoachInput{Total: 10, ByCategory: []CategoryTotal{{Category: models.CategoryOther, Total: 10}}, Count: 1})
	assert.Contains(t, prompt, "no budgets set")
}
