package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/orbitrondev/mom-service/pkg/validator"

	"github.com/orbitrondev/mom-service/internal/adapter/handler"
	"github.com/orbitrondev/mom-service/internal/adapter/repository"
	"github.com/orbitrondev/mom-service/internal/infrastructure/cache"
	"github.com/orbitrondev/mom-service/internal/infrastructure/database"
	"github.com/orbitrondev/mom-service/internal/usecase/actionitem"
	momUsecase "github.com/orbitrondev/mom-service/internal/usecase/mom"
	"github.com/orbitrondev/mom-service/pkg/config"
)

// @title           MoM Service API
// @version         1.0
// @description     Minutes of Meeting API: meeting records, information notes, decisions and action item tracking

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// Request IDs for log correlation
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db, logger); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize the summary cache. Redis is preferred; if it is down the
	// service still runs with an in-process cache.
	log.Println("📦 Connecting to Redis...")
	var summaryCache handler.SummaryCache
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, falling back to in-memory summary cache", zap.Error(err))
		summaryCache = cache.NewMemorySummaryCache(cfg.Cache.SummaryTTL)
	} else {
		defer redisClient.Close()
		summaryCache = cache.NewRedisSummaryCache(redisClient, cfg.Cache.SummaryTTL, logger)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	momRepo := repository.NewMoMRepository(db)
	infoRepo := repository.NewInformationRepository(db)
	decisionRepo := repository.NewDecisionRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)
	txManager := repository.NewTxManager(db)

	// Initialize services
	log.Println("✨ Initializing services...")
	momService := momUsecase.NewMoMService(momRepo, infoRepo, decisionRepo, actionItemRepo, txManager)
	infoService := momUsecase.NewInformationService(infoRepo)
	decisionService := momUsecase.NewDecisionService(decisionRepo)
	actionItemService := actionitem.NewActionItemService(actionItemRepo)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	momHandler := handler.NewMoM(momService, summaryCache, logger)
	infoHandler := handler.NewInformation(infoService, logger)
	decisionHandler := handler.NewDecision(decisionService, logger)
	actionItemHandler := handler.NewActionItem(actionItemService, summaryCache, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, momHandler, infoHandler, decisionHandler, actionItemHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
