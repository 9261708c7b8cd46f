package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string // "development" or "production"
	// Site origin used by the origin guard and CORS allow-list
	SiteURL string
	// Brevo transactional email API
	BrevoAPIKey string
	BrevoAPIURL string
	SenderName  string
	SenderEmail string
	HREmail     string
	// Redis/Upstash Configuration (optional; in-memory fallback when absent)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitMaxRequests   int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		// Trim the trailing slash so origin comparison never sees a double slash
		SiteURL:     strings.TrimRight(getEnv("SITE_URL", ""), "/"),
		BrevoAPIKey: getEnv("BREVO_API_KEY", ""),
		BrevoAPIURL: getEnv("BREVO_API_URL", "https://api.brevo.com/v3/smtp/email"),
		SenderName:  getEnv("SENDER_NAME", "Careers"),
		SenderEmail: getEnv("SENDER_EMAIL", ""),
		HREmail:     getEnv("HR_EMAIL", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (3 submissions per hour per client)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 3600),
		RateLimitMaxRequests:   getEnvInt("RATE_LIMIT_MAX_REQUESTS", 3),
	}

	if cfg.BrevoAPIKey == "" {
		log.Println("WARNING: BREVO_API_KEY is missing. Application submissions will fail to dispatch.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether the origin guard and strict CORS should be enforced.
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || os.Getenv("GIN_MODE") == "release"
}

// RateLimitWindow returns the configured window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
