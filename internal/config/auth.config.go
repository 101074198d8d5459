package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	HTTPAddr     string
	ClientOrigin string
	DatabaseDSN  string
	RedisAddr    string
	RedisPass    string
	JWTSecret    string
	JWTTTL       time.Duration
	CookieSecure bool
}

func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("Auth: No .env file found, relying on system env vars")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "1h"))
	if err != nil {
		log.Printf("Auth: invalid JWT_TTL, falling back to 1h: %v", err)
		ttl = time.Hour
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "portal"),
	)

	return AppConfig{
		HTTPAddr:     getEnv("HTTP_ADDR", ":5000"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DatabaseDSN:  dsn,
		RedisAddr:    getEnv("REDIS_ADDR", "redis:6379"),
		RedisPass:    getEnv("REDIS_PASS", ""),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTTTL:       ttl,
		CookieSecure: getEnv("APP_ENV", "development") == "production",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
