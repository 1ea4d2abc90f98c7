package dto

// CategoryTotal is one slice of the monthly breakdown
type CategoryTotal struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"totalAmount"`
}

// MonthlySummaryResponse is the current-month spend with its per-category breakdown
type MonthlySummaryResponse struct {
	TotalSpent        float64         `json:"totalSpent"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"`
}

// FinancialScoreResponse wraps the 0..100 heuristic score
type FinancialScoreResponse struct {
	FinancialScore int `json:"financialScore"`
}

// TrendPoint is one calendar month of spending
type TrendPoint struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// InsightResponse carries the coaching text
type InsightResponse struct {
	Insight string `json:"insight"`
}
