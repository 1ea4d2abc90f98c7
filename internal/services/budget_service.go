package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"spendwise-backend/internal/models"
	"spendwise-backend/internal/store"
)

// BudgetService maintains per-category spending limits.
type BudgetService struct {
	budgets store.BudgetStore
	now     func() time.Time
}

func NewBudgetService(budgets store.BudgetStore) *BudgetService {
	return &BudgetService{budgets: budgets, now: time.Now}
}

// Set creates the budget for category or replaces its limit.
func (s *BudgetService) Set(ctx context.Context, userID uuid.UUID, category string, limit float64) (*models.Budget, error) {
	c, ok := models.NormalizeCategory(category)
	if !ok {
		return nil, invalid("category", "must be one of %s", strings.Join(models.Categories, ", "))
	}
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit <= 0 {
		return nil, invalid("limit", "must be greater than zero")
	}
	if limit > models.MaxAmount {
		return nil, invalid("limit", "must not exceed %.0f", models.MaxAmount)
	}

	now := s.now().UTC()
	return s.budgets.UpsertBudget(ctx, &models.Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  c,
		Limit:     limit,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// List returns all budgets of the user.
func (s *BudgetService) List(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	return s.budgets.ListBudgets(ctx, userID)
}
