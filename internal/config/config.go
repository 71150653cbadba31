package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Company  CompanyConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// CompanyConfig identifies the employer printed on every timecard
type CompanyConfig struct {
	Name     string
	TaxID    string
	TimeZone string
}

type ReportConfig struct {
	FetchTimeout time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        dbPort,
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "timeclock"),
		SSLMode:     getEnv("DB_SSL_MODE", "disable"),
		AutoMigrate: autoMigrate,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Company = CompanyConfig{
		Name:     getEnv("COMPANY_NAME", ""),
		TaxID:    getEnv("COMPANY_TAX_ID", ""),
		TimeZone: getEnv("REFERENCE_TIMEZONE", "America/Bahia"),
	}

	fetchTimeout, err := time.ParseDuration(getEnv("REPORT_FETCH_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_FETCH_TIMEOUT: %w", err)
	}
	config.Report = ReportConfig{FetchTimeout: fetchTimeout}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Company.TimeZone == "" {
		return fmt.Errorf("REFERENCE_TIMEZONE is required")
	}
	if _, err := time.LoadLocation(c.Company.TimeZone); err != nil {
		return fmt.Errorf("invalid REFERENCE_TIMEZONE: %w", err)
	}
	if c.Report.FetchTimeout <= 0 {
		return fmt.Errorf("REPORT_FETCH_TIMEOUT must be positive")
	}
	return nil
}

// EngineConfig resolves the reference timezone and company header for report generation
func (c *Config) EngineConfig() (timecard.EngineConfig, error) {
	loc, err := time.LoadLocation(c.Company.TimeZone)
	if err != nil {
		return timecard.EngineConfig{}, fmt.Errorf("load reference timezone %q: %w", c.Company.TimeZone, err)
	}
	return timecard.EngineConfig{
		ReferenceTimeZone: loc,
		CompanyName:       c.Company.Name,
		CompanyTaxID:      c.Company.TaxID,
	}, nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
