package main

import (
	"log"
	"net/http"
	"os"

	_ "surveyshare/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"surveyshare/internal/auth"
	"surveyshare/internal/cache"
	"surveyshare/internal/config"
	"surveyshare/internal/db"
	"surveyshare/internal/handler"
	"surveyshare/internal/model"
	"surveyshare/internal/repository"
	"surveyshare/internal/router"
	"surveyshare/internal/service"
)

// @title Survey Share API
// @version 1.0
// @description Survey sharing service: post survey links, browse by category, respond once per survey.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.SurveyResponse{},
			&model.Survey{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Survey{},
		&model.SurveyResponse{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	surveyRepo := repository.NewSurveyRepository(gormDB)

	// Initialize session tokens
	tokenService := auth.NewTokenService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	surveyService := service.NewSurveyService(surveyRepo, userRepo, cacheClient)
	userService := service.NewUserService(userRepo, surveyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg)
	surveyHandler := handler.NewSurveyHandler(surveyService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		surveyHandler,
		userHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
