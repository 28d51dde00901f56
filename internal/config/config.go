package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	DatabaseDSN    string
	JWTSecret      string
	CORSOrigins    string
	UnlockPasscode string // passcode guarding the reveal-purchase-price toggle
}

func Load() *Config {
	// .env is optional; real env always wins
	godotenv.Load()

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=trishaw port=5432 sslmode=disable"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		UnlockPasscode: getEnv("UNLOCK_PASSCODE", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set! Required even for a local deployment.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters.")
	}
	if cfg.UnlockPasscode == "" {
		cfg.UnlockPasscode = "0000"
		log.Println("[WARN] UNLOCK_PASSCODE not set, using the default passcode. Set your own before handing the machine to an operator.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=trishaw port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN is the default value, set your own Postgres connection string for a real deployment.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
