package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"spendwise-backend/internal/config"
	"spendwise-backend/internal/handlers"
	"spendwise-backend/internal/middleware"
)

// Handlers groups every HTTP handler the router needs
type Handlers struct {
	Auth      *handlers.AuthHandler
	Expenses  *handlers.ExpenseHandler
	Budgets   *handlers.BudgetHandler
	Analytics *handlers.AnalyticsHandler
	Health    *handlers.HealthHandler
}

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, h Handlers, jwtCfg *config.JWTConfig) {
	protected := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, jwtCfg)
	}

	// Health check routes
	mux.HandleFunc("GET /health", h.Health.HealthCheck)
	mux.HandleFunc("GET /livez", h.Health.LivenessCheck)
	mux.HandleFunc("GET /readyz", h.Health.ReadinessCheck)

	// Authentication routes
	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("GET /auth/me", protected(h.Auth.Me))
	mux.HandleFunc("PUT /auth/update-profile", protected(h.Auth.UpdateProfile))
	mux.HandleFunc("DELETE /auth/delete-account", protected(h.Auth.DeleteAccount))

	// Expense ledger
	mux.HandleFunc("POST /expenses", protected(h.Expenses.CreateExpense))
	mux.HandleFunc("GET /expenses", protected(h.Expenses.ListExpenses))

	// Budgets
	mux.HandleFunc("POST /budgets", protected(h.Budgets.SetBudget))
	mux.HandleFunc("GET /budgets", protected(h.Budgets.ListBudgets))

	// Analytics
	mux.HandleFunc("GET /analytics/monthly-summary", protected(h.Analytics.MonthlySummary))
	mux.HandleFunc("GET /analytics/financial-score", protected(h.Analytics.FinancialScore))
	mux.HandleFunc("GET /analytics/monthly-trend", protected(h.Analytics.MonthlyTrend))
	mux.HandleFunc("GET /analytics/ai-coach", protected(h.Analytics.Coach))

	// API docs
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Spendwise backend is running."))
}
