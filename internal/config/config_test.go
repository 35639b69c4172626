package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DSN", "postgres://localhost/pms")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadPoolSettings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MIN_CONNS", "5")
	t.Setenv("DB_MAX_CONN_IDLE_TIME", "90s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.DBMaxConns)
	assert.Equal(t, 5, cfg.DBMinConns)
	assert.Equal(t, 90*time.Second, cfg.DBMaxConnIdleTime)
}

func TestLoadPoolDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Equal(t, 2, cfg.DBMinConns)
	assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
}

func TestLoadRejectsBadPoolSize(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "lots")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_MAX_CONNS")
}
