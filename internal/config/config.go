package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	PostgresURL     string
	APIBaseURL      string // embedded in confirmation links sent by mail
	FrontendBaseURL string // target of confirmation redirects
	CORSAllowOrigin string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
}

func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	return &AppConfig{
		Port:            getEnv("PORT", "3333"),
		PostgresURL:     os.Getenv("POSTGRES_URL"),
		APIBaseURL:      strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3333"), "/"),
		FrontendBaseURL: strings.TrimRight(getEnv("FRONTEND_BASE_URL", "http://localhost:3000"), "/"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnv("SMTP_FROM", "no-reply@planner.local"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Planner Team"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
