package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string

	// SiteBaseURL is the public wedding site; invite links point at it
	SiteBaseURL string

	JWTSecret     string
	TokenDuration time.Duration

	// Seed account for the dashboard, created on startup if missing
	AdminEmail    string
	AdminPassword string
	AdminName     string

	// Twilio credentials for outbound SMS invites
	TwilioAccountSID          string
	TwilioAuthToken           string
	TwilioFromNumber          string
	TwilioMessagingServiceSID string

	// SES settings for the RSVP notification email
	AWSRegion       string
	NotifyFromEmail string
	NotifyFromName  string
	NotifyToEmail   string

	// Google sign-in for dashboard operators
	GoogleClientID       string
	GoogleClientSecret   string
	OAuthRedirectBaseURL string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./wedding.db"),
		DatabaseURL:    getEnv("DB_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		SiteBaseURL: getEnv("SITE_BASE_URL", "http://localhost:5173"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenDuration: 24 * time.Hour,

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminName:     getEnv("ADMIN_NAME", "Admin"),

		TwilioAccountSID:          getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:           getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber:          getEnv("TWILIO_FROM_NUMBER", ""),
		TwilioMessagingServiceSID: getEnv("TWILIO_MESSAGING_SERVICE_SID", ""),

		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		NotifyFromEmail: getEnv("RSVP_NOTIFY_FROM", ""),
		NotifyFromName:  getEnv("RSVP_NOTIFY_FROM_NAME", "RSVP Bot"),
		NotifyToEmail:   getEnv("RSVP_NOTIFY_TO", ""),

		GoogleClientID:       getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:   getEnv("GOOGLE_CLIENT_SECRET", ""),
		OAuthRedirectBaseURL: getEnv("OAUTH_REDIRECT_BASE_URL", "http://localhost:8080"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
