package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/rajasthanwx/weather-monitor/internal/api/http"
	"github.com/rajasthanwx/weather-monitor/internal/config"
	"github.com/rajasthanwx/weather-monitor/internal/scheduler"
	"github.com/rajasthanwx/weather-monitor/internal/store"
	"github.com/rajasthanwx/weather-monitor/internal/view"
)

func main() {
	// Load configuration (reads .env when present).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Datastore client, or the disabled fallback when the endpoint/key
	// were never provided. Created once at boot and read-only thereafter.
	var st store.Store
	if cfg.DatastoreConfigured() {
		httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
		st = store.NewRestStore(httpClient, cfg.SupabaseURL, cfg.SupabaseAnonKey)
	} else {
		st = store.NewDisabledStore()
	}

	// View-state controller holding the dashboard snapshot.
	ctrl := view.NewController(st, view.Options{
		ForecastDays: cfg.ForecastDays,
		HourlyWindow: cfg.HourlyWindow,
		AlertsLimit:  cfg.AlertsLimit,
	})

	// Initial fetch so the first request doesn't see an idle snapshot.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		ctrl.Refresh(ctx)
	}()

	// Scheduler re-triggering the refresh cycle.
	sched := scheduler.New(ctrl, cfg.RefreshInterval, 30*time.Second)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-monitor",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-monitor",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, ctrl, st, cfg.GeocoderAPIKey)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
