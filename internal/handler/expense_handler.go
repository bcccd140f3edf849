package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"timetrack/internal/errors"
	"timetrack/internal/model"
	"timetrack/internal/service"
)

// ExpenseHandler handles expense endpoints.
type ExpenseHandler struct {
	expenseService service.ExpenseService
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseCreateRequest represents a new expense claim. Amount is a
// json.Number so both 12.5 and "12.5" bind.
type ExpenseCreateRequest struct {
	Description string      `json:"description" validate:"required"`
	Amount      json.Number `json:"amount" validate:"required"`
	Date        string      `json:"date" validate:"required"`
	Time        string      `json:"time" validate:"required"`
	Latitude    *float64    `json:"latitude"`
	Longitude   *float64    `json:"longitude"`
	Category    string      `json:"category"`
	Receipt     *string     `json:"receipt"`
}

// ExpenseRecordView is the trimmed record echoed back on create.
type ExpenseRecordView struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
}

// ExpenseCreateResponse represents a created claim.
type ExpenseCreateResponse struct {
	Success bool              `json:"success"`
	ID      string            `json:"id"`
	Amount  float64           `json:"amount"`
	Message string            `json:"message"`
	Record  ExpenseRecordView `json:"record"`
}

// ExpenseListResponse represents an expense listing with aggregates.
type ExpenseListResponse struct {
	Success       bool               `json:"success"`
	Data          []model.Expense    `json:"data"`
	Count         int                `json:"count"`
	TotalAmount   float64            `json:"totalAmount"`
	MonthlyTotals map[string]float64 `json:"monthlyTotals"`
	User          string             `json:"user"`
	Currency      string             `json:"currency"`
}

// Create godoc
// @Summary Record an expense claim
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExpenseCreateRequest true "Expense data"
// @Success 201 {object} ExpenseCreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return err
	}

	var req ExpenseCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "Missing required fields: description, amount, date, time",
		})
	}

	expense, err := h.expenseService.Create(c.Request().Context(), claims, service.ExpenseInput{
		Description: req.Description,
		Amount:      req.Amount.String(),
		Date:        req.Date,
		Time:        req.Time,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Category:    req.Category,
		Receipt:     req.Receipt,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, errors.ErrorResponse{Error: httpErr.Message})
	}

	return c.JSON(http.StatusCreated, ExpenseCreateResponse{
		Success: true,
		ID:      expense.ID,
		Amount:  expense.Amount,
		Message: "Expense recorded successfully",
		Record: ExpenseRecordView{
			ID:          expense.ID,
			Description: expense.Description,
			Amount:      expense.Amount,
			Date:        expense.Date,
			Time:        expense.Time,
		},
	})
}

// List godoc
// @Summary List expense claims with totals
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param user query string false "Target username (admin only)"
// @Param date query string false "Exact date YYYY-MM-DD"
// @Param month query string false "Month 1-12, with year"
// @Param year query string false "Year YYYY, with month"
// @Param category query string false "Category filter"
// @Success 200 {object} ExpenseListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /expenses [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return err
	}

	list, err := h.expenseService.List(c.Request().Context(), claims, service.ExpenseQuery{
		User:     c.QueryParam("user"),
		Date:     c.QueryParam("date"),
		Month:    c.QueryParam("month"),
		Year:     c.QueryParam("year"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, errors.ErrorResponse{Error: httpErr.Message})
	}

	data := list.Expenses
	if data == nil {
		data = []model.Expense{}
	}

	return c.JSON(http.StatusOK, ExpenseListResponse{
		Success:       true,
		Data:          data,
		Count:         len(data),
		TotalAmount:   list.TotalAmount,
		MonthlyTotals: list.MonthlyTotals,
		User:          claims.Username,
		Currency:      model.ExpenseCurrency,
	})
}
