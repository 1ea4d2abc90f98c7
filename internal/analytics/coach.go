package analytics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"spendwise-backend/internal/models"
)

// CoachWindow is how far back the coach looks.
const CoachWindow = 30 * 24 * time.Hour

const (
	// NoRecentExpensesMessage is returned without calling the model when the window is empty.
	NoRecentExpensesMessage = "You haven't logged any expenses in the last 30 days. Start tracking to get AI insights!"
	// CoachOfflineMessage replaces the insight when the model cannot be reached.
	CoachOfflineMessage = "The Financial Coach is currently offline. Try again later!"
)

// BudgetStatus pairs a budget limit with what was spent in the window.
type BudgetStatus struct {
	Category string
	Limit    float64
	Spent    float64
}

// CoachInput is the spending snapshot the coaching prompt is built from.
type CoachInput struct {
	Total      float64
	ByCategory []CategoryTotal
	Budgets    []BudgetStatus
	Count      int
}

// RecentSpending summarizes expenses in the coach window ending at now.
func RecentSpending(expenses []models.Expense, budgets []models.Budget, now time.Time) CoachInput {
	since := now.Add(-CoachWindow)

	var count int
	for _, e := range expenses {
		if !e.Date.Before(since) {
			count++
		}
	}

	summary := summarize(expenses, since)
	spent := make(map[string]float64, len(summary.Breakdown))
	for _, ct := range summary.Breakdown {
		spent[ct.Category] = ct.Total
	}

	status := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		status = append(status, BudgetStatus{Category: b.Category, Limit: b.Limit, Spent: spent[b.Category]})
	}
	sort.Slice(status, func(i, j int) bool { return status[i].Category < status[j].Category })

	return CoachInput{
		Total:      summary.Total,
		ByCategory: summary.Breakdown,
		Budgets:    status,
		Count:      count,
	}
}

// CoachPrompt renders the instructions sent to the text generator.
func CoachPrompt(in CoachInput) string {
	var b strings.Builder
	b.WriteString("Analyze this user's 30-day spending:\n")
	fmt.Fprintf(&b, "- Total Spent: %s\n", rupees(in.Total))

	b.WriteString("- Category Breakdown:")
	if len(in.ByCategory) == 0 {
		b.WriteString(" none")
	}
	for i, ct := range in.ByCategory {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, " %s %s", ct.Category, rupees(ct.Total))
	}
	b.WriteString("\n")

	b.WriteString("- Budget Status:")
	if len(in.Budgets) == 0 {
		b.WriteString(" no budgets set")
	}
	for i, bs := range in.Budgets {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, " %s spent %s of %s", bs.Category, rupees(bs.Spent), rupees(bs.Limit))
	}
	b.WriteString("\n\n")

	b.WriteString(`STRICT RULES:
1. Provide exactly 3 bullet points.
2. Each bullet point MUST be under 15 words.
3. Be blunt and actionable (e.g., "Cut Zomato by 20% to save ₹2k").
4. No introductory or concluding text.
`)
	return b.String()
}

func rupees(v float64) string {
	return "₹" + strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
