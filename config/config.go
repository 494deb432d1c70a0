package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	BaseURL     string

	// Admin panel
	AdminPassword string
	SessionSecret string

	// Email addresses
	AdminEmail string
	FromEmail  string
	FromName   string

	// Mail transport
	EmailProvider         string // "ses" or "noop"
	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESInsecureSkipVerify bool

	// Storage files
	RegistrationsFile string
	DistrictsFile     string
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist and we rely on system environment
	// variables, so a load failure is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:           env,
		Port:                  os.Getenv("PORT"),
		BaseURL:               os.Getenv("BASE_URL"),
		AdminPassword:         os.Getenv("ADMIN_PASSWORD"),
		SessionSecret:         os.Getenv("SESSION_SECRET"),
		AdminEmail:            os.Getenv("ADMIN_EMAIL"),
		FromEmail:             os.Getenv("FROM_EMAIL"),
		FromName:              os.Getenv("FROM_NAME"),
		EmailProvider:         os.Getenv("EMAIL_PROVIDER"),
		AWSRegion:             os.Getenv("AWS_REGION"),
		AWSAccessKeyID:        os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SESInsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
		RegistrationsFile:     os.Getenv("DB_FILE"),
		DistrictsFile:         os.Getenv("DISTRICT_FILE"),
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "jorge.28.silva.sam@gmail.com"
	}
	if cfg.FromEmail == "" {
		// Sender falls back to the organizer address; both have to be
		// verified with the mail provider anyway.
		cfg.FromEmail = cfg.AdminEmail
	}
	if cfg.FromName == "" {
		cfg.FromName = "Almoço Prodigi"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}
	if cfg.RegistrationsFile == "" {
		cfg.RegistrationsFile = "./inscricoes.json"
	}
	if cfg.DistrictsFile == "" {
		cfg.DistrictsFile = "./data/distritos_concelhos.json"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "muda-este-segredo-em-producao"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "prodigi2025"
	}

	return cfg, nil
}
