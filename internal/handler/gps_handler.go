package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"timetrack/internal/errors"
	"timetrack/internal/model"
	"timetrack/internal/service"
)

// GpsHandler handles GPS tracking endpoints.
type GpsHandler struct {
	gpsService service.GpsService
}

// NewGpsHandler creates a new GPS handler.
func NewGpsHandler(gpsService service.GpsService) *GpsHandler {
	return &GpsHandler{gpsService: gpsService}
}

// GpsCreateRequest represents a new GPS point. Coordinates are json.Number
// so both 40.4 and "40.4" bind.
type GpsCreateRequest struct {
	Latitude  json.Number `json:"latitude" validate:"required"`
	Longitude json.Number `json:"longitude" validate:"required"`
	Date      string      `json:"date" validate:"required"`
	Time      string      `json:"time" validate:"required"`
	Accuracy  *float64    `json:"accuracy"`
	Altitude  *float64    `json:"altitude"`
	Speed     *float64    `json:"speed"`
	Filename  string      `json:"filename"`
}

// GpsCreateResponse represents a recorded point.
type GpsCreateResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

// GpsListResponse represents a GPS point listing.
type GpsListResponse struct {
	Success bool             `json:"success"`
	Data    []model.GpsPoint `json:"data"`
	Count   int              `json:"count"`
	User    string           `json:"user"`
	Limited bool             `json:"limited"`
}

// Create godoc
// @Summary Record a GPS point
// @Tags gpx
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GpsCreateRequest true "GPS point data"
// @Success 201 {object} GpsCreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /gpx [post]
func (h *GpsHandler) Create(c echo.Context) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return err
	}

	var req GpsCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "Missing required GPS fields: latitude, longitude, date, time",
		})
	}

	point, err := h.gpsService.Create(c.Request().Context(), claims, service.GpsInput{
		Latitude:  req.Latitude.String(),
		Longitude: req.Longitude.String(),
		Date:      req.Date,
		Time:      req.Time,
		Accuracy:  req.Accuracy,
		Altitude:  req.Altitude,
		Speed:     req.Speed,
		Filename:  req.Filename,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, errors.ErrorResponse{Error: httpErr.Message})
	}

	// Coordinates stay out of the logs.
	c.Logger().Debugf("gps point recorded: %s", point.ID)

	return c.JSON(http.StatusCreated, GpsCreateResponse{
		Success: true,
		ID:      point.ID,
		Message: "GPS point recorded successfully",
	})
}

// List godoc
// @Summary List GPS points
// @Tags gpx
// @Produce json
// @Security BearerAuth
// @Param user query string false "Target username (admin only)"
// @Param date query string false "Exact date YYYY-MM-DD"
// @Param filename query string false "Source GPX filename"
// @Param limit query int false "Max points, default 1000"
// @Success 200 {object} GpsListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /gpx [get]
func (h *GpsHandler) List(c echo.Context) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	points, limited, err := h.gpsService.List(c.Request().Context(), claims, service.GpsQuery{
		User:     c.QueryParam("user"),
		Date:     c.QueryParam("date"),
		Filename: c.QueryParam("filename"),
		Limit:    limit,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, errors.ErrorResponse{Error: httpErr.Message})
	}
	if points == nil {
		points = []model.GpsPoint{}
	}

	return c.JSON(http.StatusOK, GpsListResponse{
		Success: true,
		Data:    points,
		Count:   len(points),
		User:    claims.Username,
		Limited: limited,
	})
}
