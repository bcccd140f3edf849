package main

import (
	"log"
	"net/http"

	_ "timetrack/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"timetrack/internal/auth"
	"timetrack/internal/cache"
	"timetrack/internal/config"
	"timetrack/internal/db"
	"timetrack/internal/handler"
	"timetrack/internal/model"
	"timetrack/internal/repository"
	"timetrack/internal/router"
	"timetrack/internal/service"
)

// @title Timetrack API
// @version 1.0
// @description Time-tracking backend: login/JWT issuance, token verification and append-only timesheet, GPS and expense stores.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.TimesheetEntry{},
		&model.GpsPoint{},
		&model.Expense{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	timesheetRepo := repository.NewTimesheetRepository(gormDB)
	gpsRepo := repository.NewGpsRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	timesheetService := service.NewTimesheetService(timesheetRepo)
	gpsService := service.NewGpsService(gpsRepo)
	expenseService := service.NewExpenseService(expenseRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	timesheetHandler := handler.NewTimesheetHandler(timesheetService)
	gpsHandler := handler.NewGpsHandler(gpsService)
	expenseHandler := handler.NewExpenseHandler(expenseService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		timesheetHandler,
		expenseHandler,
		gpsHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
