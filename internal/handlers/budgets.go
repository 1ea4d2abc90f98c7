package handlers

import (
	"net/http"

	"spendwise-backend/internal/dto"
	"spendwise-backend/internal/models"
	"spendwise-backend/internal/services"
	"spendwise-backend/internal/utils"
)

// BudgetHandler handles per-category budgets
type BudgetHandler struct {
	budgets *services.BudgetService
}

func NewBudgetHandler(budgets *services.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// SetBudget creates or replaces the limit for a category
// @Summary Set budget
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SetBudgetRequest true "Budget"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /budgets [post]
func (h *BudgetHandler) SetBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.SetBudgetRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	budget, err := h.budgets.Set(r.Context(), userID, req.Category, req.Limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, toBudgetResponse(budget))
}

// ListBudgets returns all budgets of the user
// @Summary List budgets
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BudgetResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	budgets, err := h.budgets.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := make([]dto.BudgetResponse, 0, len(budgets))
	for i := range budgets {
		resp = append(resp, toBudgetResponse(&budgets[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

func toBudgetResponse(b *models.Budget) dto.BudgetResponse {
	return dto.BudgetResponse{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		Category:  b.Category,
		Limit:     b.Limit,
		CreatedAt: utils.FormatTimestamp(b.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(b.UpdatedAt),
	}
}
