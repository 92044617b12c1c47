package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	APIBaseURL string // base URL of the company REST backend
	CompanyID  int    // company record used by the public site

	UploadFolder string // folder name passed to the media upload endpoint

	HTTPTimeoutSeconds int
	CacheTTLMinutes    int // public company aggregate cache lifetime
	SessionTTLMinutes  int // admin dashboard session lifetime
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),
		CompanyID:  getEnvInt("COMPANY_ID", 1),

		UploadFolder: getEnv("UPLOAD_FOLDER", "clebutPublicImage"),

		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 15),
		CacheTTLMinutes:    getEnvInt("CACHE_TTL_MINUTES", 10),
		SessionTTLMinutes:  getEnvInt("SESSION_TTL_MINUTES", 720),
	}

	if AppConfig.APIBaseURL == "http://localhost:8000" {
		log.Println("Warning: Using default API_BASE_URL. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
