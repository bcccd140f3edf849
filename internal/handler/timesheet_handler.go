package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"timetrack/internal/errors"
	"timetrack/internal/model"
	"timetrack/internal/service"
)

// TimesheetHandler handles timesheet endpoints.
type TimesheetHandler struct {
	timesheetService service.TimesheetService
}

// NewTimesheetHandler creates a new timesheet handler.
func NewTimesheetHandler(timesheetService service.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheetService: timesheetService}
}

// TimesheetCreateRequest represents a new timesheet entry.
type TimesheetCreateRequest struct {
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// TimesheetCreateResponse represents a created entry.
type TimesheetCreateResponse struct {
	Success bool                  `json:"success"`
	ID      string                `json:"id"`
	Message string                `json:"message"`
	Record  *model.TimesheetEntry `json:"record"`
}

// TimesheetListResponse represents a timesheet listing.
type TimesheetListResponse struct {
	Success bool                   `json:"success"`
	Data    []model.TimesheetEntry `json:"data"`
	Count   int                    `json:"count"`
	User    string                 `json:"user"`
}

// Create godoc
// @Summary Record a timesheet entry
// @Tags timesheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TimesheetCreateRequest true "Entry data"
// @Success 201 {object} TimesheetCreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /timesheet [post]
func (h *TimesheetHandler) Create(c echo.Context) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return err
	}

	var req TimesheetCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "Missing required fields: date, time, description",
		})
	}

	entry, err := h.timesheetService.Create(c.Request().Context(), claims, service.TimesheetInput{
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, errors.ErrorResponse{Error: httpErr.Message})
	}

	return c.JSON(http.StatusCreated, TimesheetCreateResponse{
		Success: true,
		ID:      entry.ID,
		Message: "Timesheet record created successfully",
		Record:  entry,
	})
}

// List godoc
// @Summary List timesheet entries
// @Tags timesheet
// @Produce json
// @Security BearerAuth
// @Param user query string false "Target username (admin only)"
// @Param date query string false "Exact date YYYY-MM-DD"
// @Param month query string false "Month 1-12, with year"
// @Param year query string false "Year YYYY, with month"
// @Success 200 {object} TimesheetListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /timesheet [get]
func (h *TimesheetHandler) List(c echo.Context) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return err
	}

	entries, err := h.timesheetService.List(c.Request().Context(), claims, service.TimesheetQuery{
		User:  c.QueryParam("user"),
		Date:  c.QueryParam("date"),
		Month: c.QueryParam("month"),
		Year:  c.QueryParam("year"),
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, errors.ErrorResponse{Error: httpErr.Message})
	}
	if entries == nil {
		entries = []model.TimesheetEntry{}
	}

	return c.JSON(http.StatusOK, TimesheetListResponse{
		Success: true,
		Data:    entries,
		Count:   len(entries),
		User:    claims.Username,
	})
}
