package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "corpdesk/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"corpdesk/internal/auth"
	"corpdesk/internal/cache"
	"corpdesk/internal/config"
	"corpdesk/internal/db"
	apperrors "corpdesk/internal/errors"
	"corpdesk/internal/handler"
	"corpdesk/internal/identity"
	"corpdesk/internal/media"
	"corpdesk/internal/model"
	"corpdesk/internal/repository"
	"corpdesk/internal/router"
	"corpdesk/internal/service"
)

// @title Corpdesk API
// @version 1.0
// @description Company profile API with dual-identity registration, verification channels, and media uploads.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	apperrors.Development = os.Getenv("APP_ENV") == "development"

	ctx := context.Background()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models. The unique constraints on users.email,
	// users.mobile_no and company_profile.owner_id are the real uniqueness
	// enforcement; service-level pre-checks only give friendlier errors.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CompanyProfile{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	provider, err := identity.NewFirebaseProvider(ctx, cfg.FirebaseCredentials)
	if err != nil {
		log.Fatalf("identity provider init: %v", err)
	}

	uploader, err := media.NewCloudinaryUploader(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("media uploader init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	companyRepo := repository.NewCompanyRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, provider, jwtService, cacheClient)
	userService := service.NewUserService(userRepo, cacheClient)
	companyService := service.NewCompanyService(companyRepo, uploader, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, userService, jwtService)
	userHandler := handler.NewUserHandler(userService)
	companyHandler := handler.NewCompanyHandler(companyService)

	// Register routes
	router.Register(
		e,
		jwtService,
		userRepo,
		authHandler,
		userHandler,
		companyHandler,
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
