package dto

// SetBudgetRequest creates or replaces the limit for one category
type SetBudgetRequest struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

// BudgetResponse represents a budget row in responses
type BudgetResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}
