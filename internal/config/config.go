package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port          string
	DBURL         string
	DBUsername    string
	DBPassword    string
	LogLevel      string
	JWTSecret     string
	PredictionURL string
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SenderEmail   string
}

// NewConfig loads configuration from a .env file (if present) and
// environment variables
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBURL:         getEnv("DB_URL", ""),
		DBUsername:    getEnv("DB_USERNAME", ""),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		PredictionURL: getEnv("PREDICTION_URL", "http://localhost:5000/predict_risk"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", "advisor@localhost"),
	}

	if cfg.DBURL == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}
	if cfg.DBUsername == "" {
		return nil, fmt.Errorf("DB_USERNAME is required")
	}
	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.PredictionURL == "" {
		return nil, fmt.Errorf("PREDICTION_URL is required")
	}

	return cfg, nil
}

// ConnString assembles the lib/pq connection string from the storage settings
func (c *Config) ConnString() string {
	return fmt.Sprintf("%s user=%s password=%s", c.DBURL, c.DBUsername, c.DBPassword)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
