// Package store defines the persistence contracts for users, expenses and budgets.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"spendwise-backend/internal/models"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a user with the same email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore persists user credentials.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserName(ctx context.Context, id uuid.UUID, name string) (*models.User, error)
	// DeleteUser removes the user's expenses, then budgets, then the user row
	// inside a single transaction.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// ExpenseStore persists the expense ledger.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, e *models.Expense) error
	// ListExpenses returns every expense of the user, most recent date first.
	ListExpenses(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
}

// BudgetStore persists per-category limits.
type BudgetStore interface {
	// UpsertBudget inserts the row or overwrites the limit of the existing
	// (user, category) row and returns the stored budget.
	UpsertBudget(ctx context.Context, b *models.Budget) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
}

// Store is the full persistence surface used by the server.
type Store interface {
	UserStore
	ExpenseStore
	BudgetStore
	Ping(ctx context.Context) error
	Close() error
}
