// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// SMTPConfig holds the transactional email settings. Sending is disabled
// when User or Pass is empty.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// AdminConfig holds the admin account. PasswordHash is a bcrypt hash; the
// plain ADMIN_PASSWORD variable is accepted for local development and hashed
// at startup.
type AdminConfig struct {
	Email        string
	PasswordHash string
	Password     string
}

// Config is the full service configuration.
type Config struct {
	Port        string
	DatabaseURL string
	DataFile    string
	LogLevel    string
	SMTP        SMTPConfig
	Admin       AdminConfig
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables always win.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DataFile:    getenv("DATA_FILE", "./data.json"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		SMTP: SMTPConfig{
			Host: getenv("SMTP_HOST", "smtp.gmail.com"),
			Port: getenvInt("SMTP_PORT", 587),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			From: getenv("SMTP_FROM", "noreply@devmarket.local"),
		},
		Admin: AdminConfig{
			Email:        getenv("ADMIN_EMAIL", "admin@example.com"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			Password:     os.Getenv("ADMIN_PASSWORD"),
		},
	}
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
