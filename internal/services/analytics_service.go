package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"spendwise-backend/internal/ai"
	"spendwise-backend/internal/analytics"
	"spendwise-backend/internal/log"
	"spendwise-backend/internal/store"
)

// AnalyticsService loads a user's ledger and budgets and runs the analytics aggregations.
type AnalyticsService struct {
	expenses  store.ExpenseStore
	budgets   store.BudgetStore
	gen       ai.Generator
	loc       *time.Location
	aiTimeout time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// AnalyticsOption customizes an AnalyticsService.
type AnalyticsOption func(*AnalyticsService)

// WithLocation sets the timezone used for calendar months.
func WithLocation(loc *time.Location) AnalyticsOption {
	return func(s *AnalyticsService) { s.loc = loc }
}

// WithAITimeout bounds the coaching call.
func WithAITimeout(d time.Duration) AnalyticsOption {
	return func(s *AnalyticsService) { s.aiTimeout = d }
}

// WithAnalyticsClock overrides time.Now.
func WithAnalyticsClock(now func() time.Time) AnalyticsOption {
	return func(s *AnalyticsService) { s.now = now }
}

func NewAnalyticsService(expenses store.ExpenseStore, budgets store.BudgetStore, gen ai.Generator, logger *slog.Logger, opts ...AnalyticsOption) *AnalyticsService {
	if gen == nil {
		gen = ai.Offline{}
	}
	s := &AnalyticsService{
		expenses: expenses,
		budgets:  budgets,
		gen:      gen,
		loc:      time.UTC,
		now:      time.Now,
		logger:   log.WithComponent(logger, log.ComponentAnalytics),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MonthlySummary returns the current month's spend by category.
func (s *AnalyticsService) MonthlySummary(ctx context.Context, userID uuid.UUID) (analytics.Summary, error) {
	expenses, err := s.expenses.ListExpenses(ctx, userID)
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("monthly summary: %w", err)
	}
	return analytics.MonthlySummary(expenses, s.now(), s.loc), nil
}

// MonthlyTrend returns all-time spend bucketed by calendar month.
func (s *AnalyticsService) MonthlyTrend(ctx context.Context, userID uuid.UUID) ([]analytics.MonthTotal, error) {
	expenses, err := s.expenses.ListExpenses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("monthly trend: %w", err)
	}
	return analytics.MonthlyTrend(expenses, s.loc), nil
}

// FinancialScore returns the heuristic budget-adherence score.
func (s *AnalyticsService) FinancialScore(ctx context.Context, userID uuid.UUID) (int, error) {
	expenses, err := s.expenses.ListExpenses(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("financial score: %w", err)
	}
	budgets, err := s.budgets.ListBudgets(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("financial score: %w", err)
	}
	return analytics.FinancialScore(expenses, budgets), nil
}

// Coach returns short coaching text about the last 30 days. Model failures
// degrade to a fixed offline message; only storage errors are returned.
func (s *AnalyticsService) Coach(ctx context.Context, userID uuid.UUID) (string, error) {
	expenses, err := s.expenses.ListExpenses(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("coach: %w", err)
	}
	budgets, err := s.budgets.ListBudgets(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("coach: %w", err)
	}

	input := analytics.RecentSpending(expenses, budgets, s.now())
	if input.Count == 0 {
		return analytics.NoRecentExpensesMessage, nil
	}

	genCtx := ctx
	if s.aiTimeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.aiTimeout)
		defer cancel()
	}

	insight, err := s.gen.Generate(genCtx, analytics.CoachPrompt(input))
	if err != nil {
		s.logger.WarnContext(ctx, "coach unavailable",
			slog.String(log.FieldUserID, userID.String()),
			slog.String(log.FieldError, err.Error()))
		return analytics.CoachOfflineMessage, nil
	}
	return insight, nil
}
