package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.False(t, cfg.DB.RunMigrations)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "auth")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("REDIS_HOST", "cache.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.DB.RunMigrations)
	assert.Equal(t, "app:pw@tcp(db.internal:3306)/auth?charset=utf8mb4&parseTime=true&loc=Local", cfg.DB.DSN())
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr())
}
