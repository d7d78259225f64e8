package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// Hosted datastore access. Both must be set for data operations;
	// otherwise the service runs with a disabled datastore client.
	SupabaseURL     string
	SupabaseAnonKey string

	// RefreshInterval controls the dashboard's blind re-fetch cycle.
	RefreshInterval time.Duration

	// Per-refresh query windows.
	ForecastDays int
	HourlyWindow time.Duration
	AlertsLimit  int

	// Optional Google API key for the city-coordinate lookup endpoint.
	GeocoderAPIKey string

	HTTPTimeout time.Duration
	Port        string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.SupabaseURL = os.Getenv("SUPABASE_URL")
	cfg.SupabaseAnonKey = os.Getenv("SUPABASE_ANON_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	// Refresh cycle: default 10 minutes.
	intervalStr := getenvDefault("REFRESH_INTERVAL", "10m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 7)
	cfg.AlertsLimit = getenvInt("ALERTS_LIMIT", 20)

	windowStr := getenvDefault("HOURLY_WINDOW", "24h")
	window, err := time.ParseDuration(windowStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HOURLY_WINDOW: %w", err)
	}
	cfg.HourlyWindow = window

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

// DatastoreConfigured reports whether both datastore access values are set.
func (c *AppConfig) DatastoreConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
