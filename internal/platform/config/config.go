package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/habilafinance/finledger_backend/internal/utils"
)

// Storage backend selectors.
const (
	BackendPostgres = "postgres"
	BackendCSV      = "csv"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	StorageBackend    string
	DataDir           string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Seeded admin account, created on first start when absent.
	AdminUsername string
	AdminPassword string
	AdminName     string

	// Login rate limit, in limiter format (e.g. "10-M" for 10 per minute).
	LoginRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_BACKEND", BackendCSV)
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "finledger-backend")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("ADMIN_NAME", "Administrateur")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DataDir = viper.GetString("DATA_DIR")

	cfg.StorageBackend = viper.GetString("STORAGE_BACKEND")
	switch cfg.StorageBackend {
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: STORAGE_BACKEND is postgres but PGSQL_URL is not set.")
		}
	case BackendCSV:
		// nothing to check, the data directory is created on first write
	default:
		log.Printf("Warning: unknown STORAGE_BACKEND %q. Defaulting to %s.\n", cfg.StorageBackend, BackendCSV)
		cfg.StorageBackend = BackendCSV
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			log.Println("Warning: JWT_SECRET not set in production. Tokens will not survive a restart.")
		}
		// Generate a per-process secret rather than shipping a hardcoded one.
		secret, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = secret
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	cfg.AdminName = viper.GetString("ADMIN_NAME")
	if cfg.IsProduction && cfg.AdminPassword == "admin123" {
		log.Println("Warning: ADMIN_PASSWORD left at its default value in production.")
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	return cfg, nil
}
