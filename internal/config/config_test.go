package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "SESSION_SECRET", "SESSION_COOKIE_SAMESITE",
		"SESSION_COOKIE_SECURE", "CORS_ORIGINS", "API_KEY", "PORT",
	} {
		os.Unsetenv(key)
	}

	LoadConfig()

	assert.NotEmpty(t, AppConfig.DatabaseURL)
	assert.Equal(t, "change-me", AppConfig.SessionSecret)
	assert.Equal(t, "Lax", AppConfig.CookieSameSite)
	assert.False(t, AppConfig.CookieSecure)
	assert.Equal(t, "dev-123", AppConfig.APIKey)
	assert.Equal(t, "8080", AppConfig.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, AppConfig.AllowedOrigins())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://test:test@db:5432/testdb")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("PORT", "9090")

	LoadConfig()

	assert.Equal(t, "postgres://test:test@db:5432/testdb", AppConfig.DatabaseURL)
	assert.True(t, AppConfig.CookieSecure)
	assert.Equal(t, "9090", AppConfig.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, AppConfig.AllowedOrigins())
}
