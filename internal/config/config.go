package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	APIBaseURL     string        `validate:"required,url"`
	Port           string        `validate:"required,numeric"`
	Env            string        `validate:"oneof=development production test"`
	SiteTitle      string        `validate:"required"`
	RequestTimeout time.Duration `validate:"gt=0"`
	LogLevel       string        `validate:"oneof=debug info warn error"`

	// Shared payload cache, optional
	RedisURL string        `validate:"omitempty,url"`
	CacheTTL time.Duration `validate:"gte=0"`

	// Admin authentication
	FirebaseCredentialsPath string
	FirebaseAPIKey          string
	FirebaseAuthDomain      string
	FirebaseProjectID       string

	// Worker
	WarmSchedule string `validate:"required"`
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the .env file (if any) and the process environment into a validated Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults and validation
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	timeout, err := time.ParseDuration(get("REQUEST_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	ttl, err := time.ParseDuration(get("CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	credPath := get("FIREBASE_CREDENTIALS_PATH", "./firebase-service-account.json")

	cfg := &Config{
		APIBaseURL:              getenv("API_BASE_URL"),
		Port:                    get("PORT", "8080"),
		Env:                     get("ENV", "development"),
		SiteTitle:               get("SITE_TITLE", "Portfolio"),
		RequestTimeout:          timeout,
		LogLevel:                get("LOG_LEVEL", "info"),
		RedisURL:                getenv("REDIS_URL"),
		CacheTTL:                ttl,
		FirebaseCredentialsPath: credPath,
		FirebaseAPIKey:          getenv("FIREBASE_API_KEY"),
		FirebaseAuthDomain:      getenv("FIREBASE_AUTH_DOMAIN"),
		FirebaseProjectID:       getenv("FIREBASE_PROJECT_ID"),
		WarmSchedule:            get("WARM_SCHEDULE", "FREQ=MINUTELY;INTERVAL=5"),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
