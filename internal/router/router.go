package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"timetrack/internal/auth"
	"timetrack/internal/handler"
)

// Register wires routes and middleware. Token verification lives in a single
// JWT middleware shared by every protected route; only the 401 body shape
// differs per endpoint, which the PWA relies on.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	timesheetHandler *handler.TimesheetHandler,
	expenseHandler *handler.ExpenseHandler,
	gpsHandler *handler.GpsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(corsMiddleware)

	e.HTTPErrorHandler = methodNotAllowedShaper(e)

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/login", authHandler.Login)

	// Token check keeps its {valid:false} failure shape.
	verify := e.Group("/auth/verify", bearerAuth(jwtService, func(c echo.Context, err error) error {
		message := "Invalid or expired token"
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			message = "No token provided"
		}
		return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
			"valid":   false,
			"message": message,
		})
	}))
	verify.POST("", authHandler.Verify)
	verify.GET("", authHandler.Verify)

	// Record stores share the {error} failure shape.
	records := e.Group("", bearerAuth(jwtService, func(c echo.Context, err error) error {
		return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized - Invalid token",
		})
	}))

	records.POST("/timesheet", timesheetHandler.Create)
	records.GET("/timesheet", timesheetHandler.List)
	records.POST("/expenses", expenseHandler.Create)
	records.GET("/expenses", expenseHandler.List)
	records.POST("/gpx", gpsHandler.Create)
	records.GET("/gpx", gpsHandler.List)
}

// bearerAuth builds the JWT middleware around our token service so signature
// and expiry checks stay in one place.
func bearerAuth(jwtService *auth.JWTService, errorHandler func(echo.Context, error) error) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: errorHandler,
	})
}

// corsMiddleware answers preflight with a bare 200 before authentication and
// stamps the permissive CORS headers on everything else.
func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowOrigin, "*")
		h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
		h.Set(echo.HeaderAccessControlAllowMethods, "POST, GET, OPTIONS")
		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}
		return next(c)
	}
}

// methodNotAllowedShaper keeps the per-endpoint 405 bodies; the login
// endpoint reports {success,message}, everything else {error}.
func methodNotAllowedShaper(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusMethodNotAllowed && !c.Response().Committed {
			if strings.HasPrefix(c.Request().URL.Path, "/auth/login") {
				_ = c.JSON(http.StatusMethodNotAllowed, echo.Map{
					"success": false,
					"message": "Method not allowed",
				})
				return
			}
			_ = c.JSON(http.StatusMethodNotAllowed, echo.Map{
				"error": "Method not allowed",
			})
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
