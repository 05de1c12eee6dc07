package config

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Classifier backend selection values.
const (
	ClassifierMock   = "mock"
	ClassifierRemote = "remote"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Host         string
	Port         string
	IsProduction bool

	// Session and password reset lifetimes.
	SessionLifetime    time.Duration
	ResetTokenLifetime time.Duration

	// Federated identity.
	GoogleClientID string

	// Classifier backend: "mock" or "remote".
	ClassifierBackend string
	DetectionAPIURL   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PGHOST", "localhost")
	viper.SetDefault("PGPORT", "5432")
	viper.SetDefault("PGDATABASE", "recycle_app")
	viper.SetDefault("PGUSER", "postgres")
	viper.SetDefault("PGPASSWORD", "")
	viper.SetDefault("DB_REQUIRE_SSL", false)
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "4000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SESSION_LIFETIME", "168h")
	viper.SetDefault("RESET_TOKEN_LIFETIME", "30m")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("CLASSIFIER_BACKEND", ClassifierMock)
	viper.SetDefault("DETECTION_API_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	// Prefer a single connection string; otherwise assemble one from the
	// discrete PG* variables, the same precedence the deployment docs use.
	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		sslMode := "disable"
		if viper.GetBool("DB_REQUIRE_SSL") {
			sslMode = "require"
		}
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			url.QueryEscape(viper.GetString("PGUSER")),
			url.QueryEscape(viper.GetString("PGPASSWORD")),
			viper.GetString("PGHOST"),
			viper.GetString("PGPORT"),
			viper.GetString("PGDATABASE"),
			sslMode,
		)
		log.Println("Warning: DATABASE_URL not set. Using discrete PG* variables.")
	}

	cfg.Host = viper.GetString("HOST")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	sessionLifetimeStr := viper.GetString("SESSION_LIFETIME")
	sessionLifetime, err := time.ParseDuration(sessionLifetimeStr)
	if err != nil {
		sessionLifetime = time.Hour * 24 * 7 // 7 days
		log.Printf("Warning: Invalid value for SESSION_LIFETIME ('%s'). Defaulting to %s.\n", sessionLifetimeStr, sessionLifetime.String())
	}
	cfg.SessionLifetime = sessionLifetime

	resetLifetimeStr := viper.GetString("RESET_TOKEN_LIFETIME")
	resetLifetime, err := time.ParseDuration(resetLifetimeStr)
	if err != nil {
		resetLifetime = 30 * time.Minute
		log.Printf("Warning: Invalid value for RESET_TOKEN_LIFETIME ('%s'). Defaulting to %s.\n", resetLifetimeStr, resetLifetime.String())
	}
	cfg.ResetTokenLifetime = resetLifetime

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.ClassifierBackend = viper.GetString("CLASSIFIER_BACKEND")
	if cfg.ClassifierBackend != ClassifierMock && cfg.ClassifierBackend != ClassifierRemote {
		log.Printf("Warning: Unknown CLASSIFIER_BACKEND ('%s'). Defaulting to %s.\n", cfg.ClassifierBackend, ClassifierMock)
		cfg.ClassifierBackend = ClassifierMock
	}
	cfg.DetectionAPIURL = viper.GetString("DETECTION_API_URL")
	if cfg.ClassifierBackend == ClassifierRemote && cfg.DetectionAPIURL == "" {
		log.Println("Warning: CLASSIFIER_BACKEND=remote but DETECTION_API_URL not set. Falling back to mock.")
		cfg.ClassifierBackend = ClassifierMock
	}

	return cfg, nil
}
