package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "db:5432/growth_test")
	t.Setenv("DATABASE_USER", "growth")
	t.Setenv("DATABASE_PASSWORD", "senha")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000,https://app.exemplo.com")
	t.Setenv("SNAPSHOT_RETENTION_DAYS", "30")
	t.Setenv("SNAPSHOT_RETENTION_ENABLED", "true")
	t.Setenv("PORTAL_ERROR_DISPLAY_FOR", "2s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://growth:senha@db:5432/growth_test?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.exemplo.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "8000", cfg.Server.Port)

	assert.True(t, cfg.SnapshotRetention.Enabled)
	assert.Equal(t, 30, cfg.SnapshotRetention.Days)
	assert.Equal(t, "0 2 * * *", cfg.SnapshotRetention.CronSchedule)

	assert.Equal(t, 2*time.Second, cfg.Portal.ErrorDisplayFor)
	assert.Equal(t, 15*time.Second, cfg.Portal.RequestTimeout)
	assert.NotEmpty(t, cfg.Portal.TokenPath)
}
