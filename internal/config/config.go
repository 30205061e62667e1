package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppPort string
	AppURL  string

	// API access key for protected routes (empty disables the check)
	APIKey string

	// Upload
	UploadMaxSize int
	UploadPath    string
	ExportPath    string

	// External lookup services
	ExchangeAPIURL string
	ExchangeAPIKey string
	UUIDAPIURL     string
	LookupTimeout  time.Duration
}

func Load() (*Config, error) {
	// Load .env file if exists
	// Try to load from current dir first, then parent dirs
	_ = godotenv.Load()
	_ = godotenv.Load("../../.env") // For when running from cmd/web

	cfg := &Config{
		AppName: getEnv("APP_NAME", "Registration Web"),
		AppEnv:  getEnv("APP_ENV", "development"),
		AppPort: getEnv("APP_PORT", "8080"),
		AppURL:  getEnv("APP_URL", "http://localhost:8080"),

		APIKey: getEnv("API_KEY", ""),

		UploadMaxSize: getEnvAsInt("UPLOAD_MAX_SIZE", 104857600), // 100MB
		UploadPath:    getEnv("UPLOAD_PATH", "./storage/uploads"),
		ExportPath:    getEnv("EXPORT_PATH", "./storage/exports"),

		ExchangeAPIURL: getEnv("EXCHANGE_API_URL", "http://api.exchangeratesapi.io/v1"),
		ExchangeAPIKey: getEnv("EXCHANGE_API_KEY", ""),
		UUIDAPIURL:     getEnv("UUID_API_URL", "https://httpbin.org/uuid"),
		LookupTimeout:  getEnvAsDuration("LOOKUP_TIMEOUT", 10*time.Second),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
