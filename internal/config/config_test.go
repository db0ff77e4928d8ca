package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, "gatherhub", cfg.Database.Name)
	require.Equal(t, time.Hour, cfg.Auth.JWTExpiry)
	require.Equal(t, 120, cfg.RateLimit.PublicPerMinute)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9001")
	t.Setenv("JWT_EXPIRY_MINUTES", "120")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9001, cfg.Server.Port)
	require.Equal(t, 2*time.Hour, cfg.Auth.JWTExpiry)
}

func TestLoadRequiresMongoURL(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	require.ErrorContains(t, err, "MONGO_URL")
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.ErrorContains(t, err, "JWT_SECRET")
}

func TestGetEnvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	require.Equal(t, 8080, getEnvInt("SERVER_PORT", 8080))
}
