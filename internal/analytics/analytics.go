// Package analytics holds the read-only aggregations behind the analytics
// endpoints. Every function is pure: callers load expenses and budgets and
// pass the reference time explicitly.
package analytics

import (
	"sort"
	"time"

	"spendwise-backend/internal/models"
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string
	Total    float64
}

// Summary is the spend for one period.
type Summary struct {
	Total     float64
	Breakdown []CategoryTotal
}

// MonthTotal is the spend of one calendar month.
type MonthTotal struct {
	Year  int
	Month time.Month
	Total float64
}

// Name is the three-letter month label.
func (m MonthTotal) Name() string {
	return monthNames[m.Month-1]
}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// StartOfMonth returns midnight on the first day of now's month in loc.
func StartOfMonth(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
}

// MonthlySummary totals expenses dated on or after the start of now's month.
// Categories without spend this month are absent from the breakdown.
func MonthlySummary(expenses []models.Expense, now time.Time, loc *time.Location) Summary {
	return summarize(expenses, StartOfMonth(now, loc))
}

func summarize(expenses []models.Expense, since time.Time) Summary {
	totals := map[string]float64{}
	var total float64
	for _, e := range expenses {
		if e.Date.Before(since) {
			continue
		}
		totals[e.Category] += e.Amount
		total += e.Amount
	}
	return Summary{Total: total, Breakdown: sortedTotals(totals)}
}

// sortedTotals orders by amount descending, ties by category name.
func sortedTotals(totals map[string]float64) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for c, t := range totals {
		out = append(out, CategoryTotal{Category: c, Total: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// MonthlyTrend buckets every expense by calendar month in loc, oldest first.
func MonthlyTrend(expenses []models.Expense, loc *time.Location) []MonthTotal {
	if loc == nil {
		loc = time.UTC
	}
	type key struct {
		year  int
		month time.Month
	}
	buckets := map[key]float64{}
	for _, e := range expenses {
		d := e.Date.In(loc)
		buckets[key{d.Year(), d.Month()}] += e.Amount
	}

	out := make([]MonthTotal, 0, len(buckets))
	for k, t := range buckets {
		out = append(out, MonthTotal{Year: k.year, Month: k.month, Total: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

const (
	maxScore        = 100
	overBudgetCost  = 20
	nearBudgetCost  = 10
	nearBudgetRatio = 80.0
	fullBudgetRatio = 100.0
)

// FinancialScore is a heuristic 0..100 health indicator over all-time spend.
// Each budgeted category costs 20 points when usage exceeds 100% of its limit
// and 10 points when it exceeds 80%. Categories without a budget are ignored.
func FinancialScore(expenses []models.Expense, budgets []models.Budget) int {
	spent := map[string]float64{}
	for _, e := range expenses {
		spent[e.Category] += e.Amount
	}

	score := maxScore
	for _, b := range budgets {
		amount, ok := spent[b.Category]
		if !ok || b.Limit <= 0 {
			continue
		}
		score -= usagePenalty(amount / b.Limit * 100)
	}
	if score < 0 {
		score = 0
	}
	return score
}

func usagePenalty(usagePercent float64) int {
	switch {
	case usagePercent > fullBudgetRatio:
		return overBudgetCost
	case usagePercent > nearBudgetRatio:
		return nearBudgetCost
	default:
		return 0
	}
}
