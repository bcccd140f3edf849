package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"timetrack/internal/errors"
	"timetrack/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    interface{} `json:"user"`
	Message string      `json:"message"`
}

// loginError keeps the login endpoint's {success,message} failure shape.
func loginError(status int, message string) error {
	return echo.NewHTTPError(status, echo.Map{
		"success": false,
		"message": message,
	})
}

// Login godoc
// @Summary Authenticate and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return loginError(http.StatusBadRequest, "Username and password are required")
	}
	if err := c.Validate(&req); err != nil {
		return loginError(http.StatusBadRequest, "Username and password are required")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == errors.ErrInvalidCredentials {
			return loginError(http.StatusUnauthorized, "Invalid credentials")
		}
		return loginError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// VerifyResponse represents a successful token check.
type VerifyResponse struct {
	Valid   bool        `json:"valid"`
	User    interface{} `json:"user"`
	Message string      `json:"message"`
}

// Verify godoc
// @Summary Check a session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} map[string]interface{}
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c echo.Context) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
			"valid":   false,
			"message": "Invalid or expired token",
		})
	}

	return c.JSON(http.StatusOK, VerifyResponse{
		Valid: true,
		User: echo.Map{
			"id":       claims.UserID,
			"username": claims.Username,
			"position": claims.Position,
		},
		Message: "Token is valid",
	})
}
