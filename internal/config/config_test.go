package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8190), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "./templates", cfg.UI.TemplatesPath)
	assert.Equal(t, EnvDevelopment, cfg.Global.Env)
	assert.False(t, cfg.IsProduction())
}

func TestNewConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/catalog.db")
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "32-byte-long-auth-key-for-tests!")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "/tmp/catalog.db", cfg.Database.Path)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "32-byte-long-auth-key-for-tests!", cfg.Session.Secret)
}
