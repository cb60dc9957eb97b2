package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSCODE", "test-passcode")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.False(t, cfg.IsProd())
	assert.Equal(t, ":5001", cfg.HTTPAddr)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.AuthRateLimit)
	assert.Equal(t, time.Hour, cfg.AuthRateWindow)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "db", cfg.ResumeStorage)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoad_RequiredSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSCODE", "test-passcode")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSCODE", "")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_PASSCODE")
}

func TestLoad_InvalidResumeStorage(t *testing.T) {
	setRequired(t)
	t.Setenv("RESUME_STORAGE", "s3")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESUME_STORAGE")
}

func TestLoad_ContactAddressesFallBackToSMTPUser(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_USER", "owner@example.com")
	t.Setenv("CONTACT_TO", "")
	t.Setenv("CONTACT_FROM", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", cfg.ContactTo)
	assert.Equal(t, "owner@example.com", cfg.ContactFrom)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "prod")
	t.Setenv("AUTH_RATE_LIMIT", "10")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, 10, cfg.AuthRateLimit)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}
