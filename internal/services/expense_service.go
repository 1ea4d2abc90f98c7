package services

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"spendwise-backend/internal/ai"
	"spendwise-backend/internal/categorizer"
	"spendwise-backend/internal/log"
	"spendwise-backend/internal/models"
	"spendwise-backend/internal/store"
)

// Categorizer assigns a category to an expense description. It never fails.
type Categorizer interface {
	Categorize(ctx context.Context, description string) string
}

// NewExpense is the input of ExpenseService.Add.
type NewExpense struct {
	Amount      float64
	Description string
	// Date is optional; zero means now.
	Date        time.Time
	PaymentMode models.PaymentMode
	// Category is optional; empty means the categorizer decides.
	Category string
}

// ExpenseService records and lists expenses.
type ExpenseService struct {
	expenses    store.ExpenseStore
	categorizer Categorizer
	now         func() time.Time
	logger      *slog.Logger
}

func NewExpenseService(expenses store.ExpenseStore, cat Categorizer, logger *slog.Logger) *ExpenseService {
	if cat == nil {
		cat = categorizer.New(ai.Offline{}, 0, logger)
	}
	return &ExpenseService{
		expenses:    expenses,
		categorizer: cat,
		now:         time.Now,
		logger:      log.WithComponent(logger, log.ComponentExpense),
	}
}

// Add validates and stores a new expense, categorizing it when needed.
func (s *ExpenseService) Add(ctx context.Context, userID uuid.UUID, in NewExpense) (*models.Expense, error) {
	description := strings.TrimSpace(in.Description)

	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		return nil, invalid("amount", "must be greater than zero")
	}
	if in.Amount > models.MaxAmount {
		return nil, invalid("amount", "must not exceed %.0f", models.MaxAmount)
	}
	if description == "" {
		return nil, invalid("description", "is required")
	}

	mode := models.PaymentMode(strings.ToLower(strings.TrimSpace(string(in.PaymentMode))))
	if mode == "" {
		mode = models.DefaultPaymentMode
	}
	if !mode.Valid() {
		return nil, invalid("paymentMode", "must be one of cash, upi, card")
	}

	var category string
	if strings.TrimSpace(in.Category) != "" {
		c, ok := models.NormalizeCategory(in.Category)
		if !ok {
			return nil, invalid("category", "must be one of %s", strings.Join(models.Categories, ", "))
		}
		category = c
	} else {
		category = s.categorizer.Categorize(ctx, description)
	}

	now := s.now().UTC()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	expense := &models.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      in.Amount,
		Description: description,
		Category:    category,
		Date:        date.UTC(),
		PaymentMode: mode,
		CreatedAt:   now,
	}
	if err := s.expenses.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "expense recorded",
		slog.String(log.FieldUserID, userID.String()),
		slog.String(log.FieldCategory, category))
	return expense, nil
}

// List returns every expense of the user, most recent first.
func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	return s.expenses.ListExpenses(ctx, userID)
}
