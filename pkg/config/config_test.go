package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("ALLOWED_ORIGINS", "")
}

func TestLoad(t *testing.T) {
	t.Run("Should apply defaults for optional settings", func(t *testing.T) {
		setRequiredEnv(t)
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "5000", cfg.Server.Port)
		assert.Equal(t, "dashboardDB", cfg.Database.Name)
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
		assert.False(t, cfg.Server.Production)
		assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
		assert.True(t, cfg.CORS.AllowCredentials)
	})
	t.Run("Should fail when MONGODB_URI is missing", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("MONGODB_URI", "")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MONGODB_URI")
	})
	t.Run("Should fail when ACCESS_TOKEN_SECRET is missing", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ACCESS_TOKEN_SECRET", "")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("Should parse TOKEN_TTL as a duration", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TOKEN_TTL", "30m")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	})
	t.Run("Should reject a malformed TOKEN_TTL", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TOKEN_TTL", "soon")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("Should split ALLOWED_ORIGINS on commas", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, http://localhost:5173")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://app.example.com", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	})
	t.Run("Should detect production mode", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("APP_ENV", "production")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Server.Production)
	})
}
