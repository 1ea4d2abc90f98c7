package models

import (
	"time"

	"github.com/google/uuid"
)

// Budget is a monthly spending limit for one category of one user
type Budget struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Category  string    `json:"category" db:"category"`
	Limit     float64   `json:"limit" db:"limit_amount"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
