package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply without environment", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 5000, cfg.Server.Port)
		assert.Equal(t, "postgres", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "appdb", cfg.Database.Name)
		assert.Equal(t, "app_user", cfg.Database.User)
		assert.Equal(t, "secure_password", cfg.Database.Password)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Empty(t, cfg.Sentry.DSN)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_NAME", "catalog")
		t.Setenv("DB_USER", "svc")
		t.Setenv("DB_PASSWORD", "hunter2")
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "catalog", cfg.Database.Name)
		assert.Equal(t, "svc", cfg.Database.User)
		assert.Equal(t, "hunter2", cfg.Database.Password)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}

func TestConfigEnvHelpers(t *testing.T) {
	cfg := Config{Server: ServerConfig{Env: "production"}}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())

	cfg.Server.Env = "development"
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}
