package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise-backend/internal/models"
)

func TestBudgetService_SetIsIdempotentByCategory(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	userID := registerUser(t, newTestAuth(t, st), "budget@example.com")
	svc := NewBudgetService(st)

	first, err := svc.Set(ctx, userID, "food", 300)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryFood, first.Category)

	second, err := svc.Set(ctx, userID, "Food", 450)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 450.0, second.Limit)

	budgets, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, 450.0, budgets[0].Limit)
}

func TestBudgetService_SetValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	userID := registerUser(t, newTestAuth(t, st), "budget@example.com")
	svc := NewBudgetService(st)

	_, err := svc.Set(ctx, userID, "Groceries", 100)
	assert.True(t, IsValidation(err))

	_, err = svc.Set(ctx, userID, models.CategoryRent, 0)
	assert.True(t, IsValidation(err))

	_, err = svc.Set(ctx, userID, models.CategoryRent, -10)
	assert.True(t, IsValidation(err))

	_, err = svc.Set(ctx, userID, models.CategoryRent, models.MaxAmount*2)
	assert.True(t, IsValidation(err))

	_, err = svc.Set(ctx, userID, models.CategoryRent, models.MaxAmount)
	assert.NoError(t, err)
}
