package dto

// CreateExpenseRequest represents the payload to record an expense
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date,omitempty"` // YYYY-MM-DD or RFC3339; defaults to now
	PaymentMode string  `json:"paymentMode,omitempty"`
	Category    string  `json:"category,omitempty"` // assigned by the categorizer when empty
}

// ExpenseResponse represents an expense in responses
type ExpenseResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	PaymentMode string  `json:"paymentMode"`
	CreatedAt   string  `json:"createdAt"`
}
