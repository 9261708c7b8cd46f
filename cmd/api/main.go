package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careers-api/config"
	_ "careers-api/docs" // Important for Swagger
	v1 "careers-api/internal/delivery/http/v1"
	"careers-api/internal/usecase"
	"careers-api/pkg/email"
	"careers-api/pkg/logger"
	"careers-api/pkg/ratelimit"
	"careers-api/pkg/redis"

	"github.com/go-playground/validator/v10"

	appvalidation "careers-api/pkg/validation"
)

// @title           Careers Application Intake API
// @version         1.0
// @description     Validates job-application submissions and forwards them to the hiring team.
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting careers API", "port", cfg.Port, "env", cfg.Environment)

	// 3. Setup Rate Limit Store (Redis when configured, in-memory otherwise)
	var store ratelimit.Store
	if cfg.UpstashRedisURL != "" {
		client, err := redis.Connect(redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		})
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
			store = ratelimit.NewMemoryStore()
		} else {
			defer client.Close()
			store = ratelimit.NewRedisStore(client)
		}
	} else {
		store = ratelimit.NewMemoryStore()
	}

	// 4. Setup Email Service
	emailClient := email.NewClient(cfg)
	if !emailClient.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - application submissions will fail")
	}

	// 5. Setup Validator & UseCases
	validate := validator.New()
	appvalidation.RegisterValidators(validate)
	applicationUC := usecase.NewApplicationUsecase(emailClient, cfg.HREmail)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ApplicationUC:  applicationUC,
		Validate:       validate,
		RateLimitStore: store,
		Config:         cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
