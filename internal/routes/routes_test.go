package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"spendwise-backend/internal/ai"
	"spendwise-backend/internal/analytics"
	"spendwise-backend/internal/categorizer"
	"spendwise-backend/internal/config"
	"spendwise-backend/internal/dto"
	"spendwise-backend/internal/handlers"
	"spendwise-backend/internal/log"
	"spendwise-backend/internal/services"
	"spendwise-backend/internal/store/sqlite"
)

type APISuite struct {
	suite.Suite
	store  *sqlite.Store
	gen    *ai.Static
	server http.Handler
	jwt    *config.JWTConfig
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	st, err := sqlite.Open(filepath.Join(s.T().TempDir(), "api.db"))
	s.Require().NoError(err)
	s.store = st
	s.gen = &ai.Static{Err: ai.ErrUpstreamUnavailable}
	s.jwt = &config.JWTConfig{Secret: "api-test-secret", AccessTokenTTL: time.Hour}

	logger := log.Discard()
	cat := categorizer.New(s.gen, time.Second, logger)
	auth := services.NewAuthService(st, logger, services.WithBcryptCost(bcrypt.MinCost))

	mux := http.NewServeMux()
	SetupRoutes(mux, Handlers{
		Auth:      handlers.NewAuthHandler(auth, s.jwt),
		Expenses:  handlers.NewExpenseHandler(services.NewExpenseService(st, cat, logger)),
		Budgets:   handlers.NewBudgetHandler(services.NewBudgetService(st)),
		Analytics: handlers.NewAnalyticsHandler(services.NewAnalyticsService(st, st, s.gen, logger)),
		Health:    handlers.NewHealthHandler(st),
	}, s.jwt)
	s.server = log.Middleware(logger)(mux)
}

func (s *APISuite) TearDownTest() {
	_ = s.store.Close()
}

func (s *APISuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *APISuite) registerAndLogin(email string) string {
	rec := s.do(http.MethodPost, "/auth/register", "", dto.RegisterRequest{Name: "Asha", Email: email, Password: "secret123"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: email, Password: "secret123"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	login := decode[dto.LoginResponse](s.T(), rec)
	s.Require().NotEmpty(login.Token)
	s.Equal(email, login.User.Email)
	return login.Token
}

func (s *APISuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("OK", decode[dto.HealthResponse](s.T(), rec).Status)
	s.NotEmpty(rec.Header().Get(log.RequestIDHeader))

	rec = s.do(http.MethodGet, "/readyz", "", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *APISuite) TestRegisterResponses() {
	rec := s.do(http.MethodPost, "/auth/register", "", dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("User registered successfully", decode[dto.MessageResponse](s.T(), rec).Message)

	rec = s.do(http.MethodPost, "/auth/register", "", dto.RegisterRequest{Name: "B", Email: "A@example.com", Password: "secret123"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/auth/register", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/auth/register", "", dto.RegisterRequest{Name: "C", Email: "c@example.com", Password: strings.Repeat("x", 80)})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APISuite) TestOversizedAmountsAreRejected() {
	token := s.registerAndLogin("big@example.com")

	for range 2 {
		rec := s.do(http.MethodPost, "/expenses", token, dto.CreateExpenseRequest{Amount: 1.7e308, Description: "yacht", Category: "Shopping"})
		s.Equal(http.StatusBadRequest, rec.Code)
	}

	rec := s.do(http.MethodGet, "/analytics/monthly-summary", token, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Body.String())
}

func (s *APISuite) TestLoginFailuresLookTheSame() {
	s.registerAndLogin("known@example.com")

	wrong := s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: "known@example.com", Password: "bad-password"})
	unknown := s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})

	s.Equal(http.StatusBadRequest, wrong.Code)
	s.Equal(http.StatusBadRequest, unknown.Code)
	s.JSONEq(wrong.Body.String(), unknown.Body.String())
}

func (s *APISuite) TestProtectedRoutesRequireToken() {
	for _, path := range []string{"/expenses", "/budgets", "/analytics/monthly-summary", "/analytics/ai-coach", "/auth/me"} {
		rec := s.do(http.MethodGet, path, "", nil)
		s.Equal(http.StatusUnauthorized, rec.Code, path)
	}
	rec := s.do(http.MethodGet, "/expenses", "not-a-token", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *APISuite) TestExpenseFlow() {
	token := s.registerAndLogin("ledger@example.com")

	rec := s.do(http.MethodPost, "/expenses", token, dto.CreateExpenseRequest{Amount: 250, Description: "Paid for zomato order"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[dto.ExpenseResponse](s.T(), rec)
	s.Equal("Food", created.Category)
	s.Equal("upi", created.PaymentMode)

	rec = s.do(http.MethodPost, "/expenses", token, dto.CreateExpenseRequest{
		Amount: 9000, Description: "monthly pg rent", Date: "2020-01-05", PaymentMode: "cash",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Equal("Rent", decode[dto.ExpenseResponse](s.T(), rec).Category)

	rec = s.do(http.MethodPost, "/expenses", token, dto.CreateExpenseRequest{Amount: -1, Description: "bad"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/expenses", token, dto.CreateExpenseRequest{Amount: 1, Description: "bad date", Date: "05/01/2020"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/expenses", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	list := decode[[]dto.ExpenseResponse](s.T(), rec)
	s.Require().Len(list, 2)
	s.Equal(created.ID, list[0].ID)
	s.Equal("2020-01-05T00:00:00Z", list[1].Date)
}

func (s *APISuite) TestBudgetsAndScore() {
	token := s.registerAndLogin("budget@example.com")

	rec := s.do(http.MethodPost, "/budgets", token, dto.SetBudgetRequest{Category: "Food", Limit: 100})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	first := decode[dto.BudgetResponse](s.T(), rec)

	rec = s.do(http.MethodPost, "/budgets", token, dto.SetBudgetRequest{Category: "Food", Limit: 200})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(first.ID, decode[dto.BudgetResponse](s.T(), rec).ID)

	rec = s.do(http.MethodPost, "/budgets", token, dto.SetBudgetRequest{Category: "Snacks", Limit: 10})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/budgets", token, nil)
	s.Require().Len(decode[[]dto.BudgetResponse](s.T(), rec), 1)

	s.do(http.MethodPost, "/expenses", token, dto.CreateExpenseRequest{Amount: 250, Description: "dinner", Category: "Food"})

	rec = s.do(http.MethodGet, "/analytics/financial-score", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(80, decode[dto.FinancialScoreResponse](s.T(), rec).FinancialScore)
}

func (s *APISuite) TestAnalytics() {
	token := s.registerAndLogin("stats@example.com")

	rec := s.do(http.MethodGet, "/analytics/monthly-summary", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"totalSpent":0,"categoryBreakdown":[]}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/analytics/ai-coach", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(analytics.NoRecentExpensesMessage, decode[dto.InsightResponse](s.T(), rec).Insight)

	s.do(http.MethodPost, "/expenses", token, dto.CreateExpenseRequest{Amount: 40, Description: "Uber ride"})
	s.do(http.MethodPost, "/expenses", token, dto.CreateExpenseRequest{Amount: 60, Description: "Electricity bill"})

	rec = s.do(http.MethodGet, "/analytics/monthly-summary", token, nil)
	summary := decode[dto.MonthlySummaryResponse](s.T(), rec)
	s.Equal(100.0, summary.TotalSpent)
	s.Require().Len(summary.CategoryBreakdown, 2)
	s.Equal("Bills", summary.CategoryBreakdown[0].Category)

	rec = s.do(http.MethodGet, "/analytics/monthly-trend", token, nil)
	trend := decode[[]dto.TrendPoint](s.T(), rec)
	s.Require().Len(trend, 1)
	s.Equal(time.Now().UTC().Format("Jan"), trend[0].Name)
	s.Equal(100.0, trend[0].Total)

	// upstream down: fixed message, still 200
	rec = s.do(http.MethodGet, "/analytics/ai-coach", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(analytics.CoachOfflineMessage, decode[dto.InsightResponse](s.T(), rec).Insight)

	s.gen.Err = nil
	s.gen.Text = "- Spend less on bills"
	rec = s.do(http.MethodGet, "/analytics/ai-coach", token, nil)
	s.Equal("- Spend less on bills", decode[dto.InsightResponse](s.T(), rec).Insight)
}

func (s *APISuite) TestProfileAndDeletion() {
	token := s.registerAndLogin("me@example.com")

	rec := s.do(http.MethodPut, "/auth/update-profile", token, dto.UpdateProfileRequest{Name: "Renamed"})
	s.Require().Equal(http.StatusOK, rec.Code)
	user := decode[dto.UserResponse](s.T(), rec)
	s.Equal("Renamed", user.Name)
	s.NotContains(rec.Body.String(), "password")

	s.do(http.MethodPost, "/expenses", token, dto.CreateExpenseRequest{Amount: 5, Description: "tea"})
	s.do(http.MethodPost, "/budgets", token, dto.SetBudgetRequest{Category: "Food", Limit: 50})

	rec = s.do(http.MethodDelete, "/auth/delete-account", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	// the token is still valid but the user is gone
	rec = s.do(http.MethodGet, "/auth/me", token, nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/expenses", token, nil)
	s.Equal("[]\n", rec.Body.String())

	rec = s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: "me@example.com", Password: "secret123"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APISuite) TestInternalErrorsAreNotLeaked() {
	token := s.registerAndLogin("broken@example.com")
	s.Require().NoError(s.store.Close())

	rec := s.do(http.MethodGet, "/expenses", token, nil)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"error":"Internal Server Error"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/readyz", "", nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}
