package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"timetrack/internal/auth"
)

// claimsFromContext pulls the verified session claims the JWT middleware
// stored on the request.
func claimsFromContext(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized - Invalid token",
		})
	}
	return claims, nil
}
