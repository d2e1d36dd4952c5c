package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Security  SecurityConfig
	Storage   StorageConfig
	SMTP      SMTPConfig
	FaceMatch FaceMatchConfig
	GeoCheck  GeoCheckConfig
	TextGen   TextGenConfig
	Tickets   TicketConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// SecurityConfig holds password hashing and device authorization limits
type SecurityConfig struct {
	BcryptCost int
	MaxDevices int
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Enabled  bool
}

// FaceMatchConfig configures the external face-recognition collaborator.
type FaceMatchConfig struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	MinConfidence float64
}

// GeoCheckConfig configures workplace radius validation.
type GeoCheckConfig struct {
	MaxDistanceMeters float64
}

// TextGenConfig configures the justification generation collaborator.
type TextGenConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// TicketConfig configures ticket lifecycle housekeeping.
type TicketConfig struct {
	AutoCloseAfter    time.Duration
	AutoCloseInterval time.Duration
}

func Load() (*Config, error) {
	// A missing .env file is fine; variables may come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ponto_digital"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	bcryptCost, err := strconv.Atoi(getEnv("BCRYPT_COST", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	maxDevices, err := strconv.Atoi(getEnv("MAX_AUTHORIZED_DEVICES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_AUTHORIZED_DEVICES: %w", err)
	}
	config.Security = SecurityConfig{
		BcryptCost: bcryptCost,
		MaxDevices: maxDevices,
	}

	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@pontodigital.app"),
		Enabled:  getEnv("SMTP_HOST", "") != "",
	}

	faceTimeout, err := time.ParseDuration(getEnv("FACE_MATCH_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FACE_MATCH_TIMEOUT: %w", err)
	}
	faceMinConfidence, err := strconv.ParseFloat(getEnv("FACE_MATCH_MIN_CONFIDENCE", "0.8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FACE_MATCH_MIN_CONFIDENCE: %w", err)
	}
	config.FaceMatch = FaceMatchConfig{
		BaseURL:       getEnv("FACE_MATCH_BASE_URL", ""),
		APIKey:        getEnv("FACE_MATCH_API_KEY", ""),
		Timeout:       faceTimeout,
		MinConfidence: faceMinConfidence,
	}

	maxDistance, err := strconv.ParseFloat(getEnv("GEO_MAX_DISTANCE_METERS", "200"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEO_MAX_DISTANCE_METERS: %w", err)
	}
	config.GeoCheck = GeoCheckConfig{
		MaxDistanceMeters: maxDistance,
	}

	textGenTimeout, err := time.ParseDuration(getEnv("TEXTGEN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid TEXTGEN_TIMEOUT: %w", err)
	}
	config.TextGen = TextGenConfig{
		BaseURL: getEnv("TEXTGEN_BASE_URL", "https://generativelanguage.googleapis.com"),
		APIKey:  getEnv("TEXTGEN_API_KEY", ""),
		Model:   getEnv("TEXTGEN_MODEL", "gemini-1.5-flash"),
		Timeout: textGenTimeout,
	}

	autoCloseAfter, err := time.ParseDuration(getEnv("TICKET_AUTO_CLOSE_AFTER", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TICKET_AUTO_CLOSE_AFTER: %w", err)
	}
	autoCloseInterval, err := time.ParseDuration(getEnv("TICKET_AUTO_CLOSE_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TICKET_AUTO_CLOSE_INTERVAL: %w", err)
	}
	config.Tickets = TicketConfig{
		AutoCloseAfter:    autoCloseAfter,
		AutoCloseInterval: autoCloseInterval,
	}

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
	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if c.Security.MaxDevices < 1 {
		return fmt.Errorf("MAX_AUTHORIZED_DEVICES must be at least 1")
	}
	if c.Storage.Type != "local" {
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}
	return nil
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
