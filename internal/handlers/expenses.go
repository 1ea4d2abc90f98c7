package handlers

import (
	"net/http"
	"strings"
	"time"

	"spendwise-backend/internal/dto"
	"spendwise-backend/internal/models"
	"spendwise-backend/internal/services"
	"spendwise-backend/internal/utils"
)

// ExpenseHandler handles the expense ledger
type ExpenseHandler struct {
	expenses *services.ExpenseService
}

func NewExpenseHandler(expenses *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// CreateExpense records an expense, categorizing it when no category is sent
// @Summary Add expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	var date time.Time
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := utils.ParseDate(req.Date)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", err.Error())
			return
		}
		date = parsed
	}

	expense, err := h.expenses.Add(r.Context(), userID, services.NewExpense{
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		PaymentMode: models.PaymentMode(req.PaymentMode),
		Category:    req.Category,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, toExpenseResponse(expense))
}

// ListExpenses returns every expense of the user, newest first
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExpenseResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	expenses, err := h.expenses.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, toExpenseResponse(&expenses[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

func toExpenseResponse(e *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Amount:      e.Amount,
		Description: e.Description,
		Category:    e.Category,
		Date:        utils.FormatTimestamp(e.Date),
		PaymentMode: string(e.PaymentMode),
		CreatedAt:   utils.FormatTimestamp(e.CreatedAt),
	}
}
