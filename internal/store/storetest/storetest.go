// Package storetest holds the behavioural contract every store.Store must satisfy.
package storetest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"spendwise-backend/internal/models"
	"spendwise-backend/internal/store"
)

// Suite runs the contract against the store returned by NewStore.
type Suite struct {
	suite.Suite
	NewStore func() store.Store

	store store.Store
	ctx   context.Context
}

func (s *Suite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.NewStore()
}

func (s *Suite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func (s *Suite) newUser(email string) *models.User {
	now := time.Now().UTC().Truncate(time.Second)
	u := &models.User{
		ID:           uuid.New(),
		Name:         "Asha",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.Require().NoError(s.store.CreateUser(s.ctx, u))
	return u
}

func (s *Suite) newExpense(userID uuid.UUID, amount float64, category string, date time.Time) models.Expense {
	e := models.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: category + " spend",
		Category:    category,
		Date:        date,
		PaymentMode: models.PaymentUPI,
		CreatedAt:   time.Now().UTC(),
	}
	s.Require().NoError(s.store.CreateExpense(s.ctx, &e))
	return e
}

func (s *Suite) upsertBudget(userID uuid.UUID, category string, limit float64) *models.Budget {
	b, err := s.store.UpsertBudget(s.ctx, &models.Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Limit:     limit,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)
	return b
}

func (s *Suite) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}

func (s *Suite) TestCreateAndGetUser() {
	u := s.newUser("asha@example.com")

	byID, err := s.store.GetUserByID(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Equal(u.Email, byID.Email)
	s.Equal("hash", byID.PasswordHash)
	s.True(u.CreatedAt.Equal(byID.CreatedAt))

	byEmail, err := s.store.GetUserByEmail(s.ctx, "asha@example.com")
	s.Require().NoError(err)
	s.Equal(u.ID, byEmail.ID)
}

func (s *Suite) TestDuplicateEmail() {
	s.newUser("dup@example.com")

	err := s.store.CreateUser(s.ctx, &models.User{
		ID: uuid.New(), Name: "Other", Email: "dup@example.com", PasswordHash: "x",
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	})
	s.ErrorIs(err, store.ErrDuplicateEmail)
}

func (s *Suite) TestUnknownUserIsNotFound() {
	_, err := s.store.GetUserByID(s.ctx, uuid.New())
	s.ErrorIs(err, store.ErrNotFound)

	_, err = s.store.GetUserByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, store.ErrNotFound)

	_, err = s.store.UpdateUserName(s.ctx, uuid.New(), "x")
	s.ErrorIs(err, store.ErrNotFound)

	s.ErrorIs(s.store.DeleteUser(s.ctx, uuid.New()), store.ErrNotFound)
}

func (s *Suite) TestUpdateUserName() {
	u := s.newUser("rename@example.com")

	updated, err := s.store.UpdateUserName(s.ctx, u.ID, "Asha Rao")
	s.Require().NoError(err)
	s.Equal("Asha Rao", updated.Name)
	s.Equal(u.Email, updated.Email)
	s.False(updated.UpdatedAt.Before(u.UpdatedAt))
}

func (s *Suite) TestListExpensesOrderedByDateDesc() {
	u := s.newUser("ledger@example.com")
	other := s.newUser("other@example.com")
	base := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	s.newExpense(u.ID, 10, models.CategoryFood, base)
	s.newExpense(u.ID, 30, models.CategoryTravel, base.Add(48*time.Hour))
	s.newExpense(u.ID, 20, models.CategoryRent, base.Add(24*time.Hour))
	s.newExpense(other.ID, 99, models.CategoryFood, base)

	got, err := s.store.ListExpenses(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(30.0, got[0].Amount)
	s.Equal(20.0, got[1].Amount)
	s.Equal(10.0, got[2].Amount)
	s.True(got[0].Date.Equal(base.Add(48 * time.Hour)))
	s.Equal(models.PaymentUPI, got[0].PaymentMode)
}

func (s *Suite) TestListExpensesEmpty() {
	u := s.newUser("empty@example.com")
	got, err := s.store.ListExpenses(s.ctx, u.ID)
	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *Suite) TestExpenseForMissingUser() {
	e := models.Expense{
		ID: uuid.New(), UserID: uuid.New(), Amount: 5, Description: "ghost",
		Category: models.CategoryOther, Date: time.Now().UTC(), PaymentMode: models.PaymentCash,
		CreatedAt: time.Now().UTC(),
	}
	s.ErrorIs(s.store.CreateExpense(s.ctx, &e), store.ErrNotFound)
}

func (s *Suite) TestUpsertBudgetIsIdempotentByCategory() {
	u := s.newUser("budget@example.com")

	first := s.upsertBudget(u.ID, models.CategoryFood, 300)
	second := s.upsertBudget(u.ID, models.CategoryFood, 500)
	third := s.upsertBudget(u.ID, models.CategoryFood, 500)

	s.Equal(first.ID, second.ID)
	s.Equal(first.ID, third.ID)
	s.Equal(500.0, third.Limit)

	budgets, err := s.store.ListBudgets(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Require().Len(budgets, 1)
	s.Equal(models.CategoryFood, budgets[0].Category)
	s.Equal(500.0, budgets[0].Limit)
}

func (s *Suite) TestBudgetsAreScopedPerUser() {
	a := s.newUser("a@example.com")
	b := s.newUser("b@example.com")

	s.upsertBudget(a.ID, models.CategoryFood, 100)
	s.upsertBudget(a.ID, models.CategoryRent, 900)
	s.upsertBudget(b.ID, models.CategoryFood, 50)

	budgets, err := s.store.ListBudgets(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Len(budgets, 2)
}

func (s *Suite) TestDeleteUserCascades() {
	u := s.newUser("gone@example.com")
	keep := s.newUser("keep@example.com")
	s.newExpense(u.ID, 12, models.CategoryFood, time.Now().UTC())
	s.newExpense(keep.ID, 7, models.CategoryFood, time.Now().UTC())
	s.upsertBudget(u.ID, models.CategoryFood, 100)

	s.Require().NoError(s.store.DeleteUser(s.ctx, u.ID))

	expenses, err := s.store.ListExpenses(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Empty(expenses)

	budgets, err := s.store.ListBudgets(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Empty(budgets)

	_, err = s.store.GetUserByID(s.ctx, u.ID)
	s.ErrorIs(err, store.ErrNotFound)

	remaining, err := s.store.ListExpenses(s.ctx, keep.ID)
	s.Require().NoError(err)
	s.Len(remaining, 1)
}
