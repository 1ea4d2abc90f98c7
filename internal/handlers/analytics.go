package handlers

import (
	"net/http"

	"spendwise-backend/internal/dto"
	"spendwise-backend/internal/services"
	"spendwise-backend/internal/utils"
)

// AnalyticsHandler serves the dashboard aggregations and coaching text
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// MonthlySummary returns the current month's spend by category
// @Summary Monthly summary
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /analytics/monthly-summary [get]
func (h *AnalyticsHandler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	summary, err := h.analytics.MonthlySummary(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	breakdown := make([]dto.CategoryTotal, 0, len(summary.Breakdown))
	for _, ct := range summary.Breakdown {
		breakdown = append(breakdown, dto.CategoryTotal{Category: ct.Category, TotalAmount: ct.Total})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MonthlySummaryResponse{
		TotalSpent:        summary.Total,
		CategoryBreakdown: breakdown,
	})
}

// FinancialScore returns the heuristic 0..100 budget adherence score
// @Summary Financial score
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.FinancialScoreResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /analytics/financial-score [get]
func (h *AnalyticsHandler) FinancialScore(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	score, err := h.analytics.FinancialScore(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.FinancialScoreResponse{FinancialScore: score})
}

// MonthlyTrend returns spend per calendar month, oldest first
// @Summary Monthly trend
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TrendPoint
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /analytics/monthly-trend [get]
func (h *AnalyticsHandler) MonthlyTrend(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	trend, err := h.analytics.MonthlyTrend(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	points := make([]dto.TrendPoint, 0, len(trend))
	for _, m := range trend {
		points = append(points, dto.TrendPoint{Name: m.Name(), Total: m.Total})
	}
	utils.WriteJSONResponse(w, http.StatusOK, points)
}

// Coach returns three short coaching bullet points about the last 30 days
// @Summary AI coach
// @Description Falls back to a fixed message when the model is unavailable
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.InsightResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /analytics/ai-coach [get]
func (h *AnalyticsHandler) Coach(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	insight, err := h.analytics.Coach(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.InsightResponse{Insight: insight})
}
