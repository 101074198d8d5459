package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, "http://localhost:5173", cfg.ClientOrigin)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.False(t, cfg.CookieSecure)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("CLIENT_ORIGIN", "https://portal.example.com")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "https://portal.example.com", cfg.ClientOrigin)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.True(t, cfg.CookieSecure)
}

func TestLoad_InvalidTTLFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL", "sometime")

	cfg := Load()
	assert.Equal(t, time.Hour, cfg.JWTTTL)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	assert.Equal(t, "value", getEnv("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("SOME_OTHER_KEY", "fallback"))
}
