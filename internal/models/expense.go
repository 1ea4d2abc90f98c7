package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMode is how an expense was paid
type PaymentMode string

const (
	PaymentCash PaymentMode = "cash"
	PaymentUPI  PaymentMode = "upi"
	PaymentCard PaymentMode = "card"
)

// DefaultPaymentMode is applied when a request omits the payment mode
const DefaultPaymentMode = PaymentUPI

// MaxAmount bounds expense amounts and budget limits so that sums stay finite.
const MaxAmount = 1e12

// Valid reports whether m is one of the accepted payment modes
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard:
		return true
	}
	return false
}

// Expense is a single spending record owned by a user
type Expense struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	UserID      uuid.UUID   `json:"userId" db:"user_id"`
	Amount      float64     `json:"amount" db:"amount"`
	Description string      `json:"description" db:"description"`
	Category    string      `json:"category" db:"category"`
	Date        time.Time   `json:"date" db:"date"`
	PaymentMode PaymentMode `json:"paymentMode" db:"payment_mode"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}
