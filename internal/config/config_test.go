package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults from flags", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "postgres://localhost/cashbox")
		t.Setenv("JWT_SECRET", "secret")

		conf, err := loadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, "localhost:8080", conf.RunAddress)
		assert.Equal(t, "internal/db/migrations", conf.MigrationsDir)
		assert.Equal(t, 24*time.Hour, conf.IdempotencyTTL)
		assert.Equal(t, uint(5), conf.NotifyWorkers)
		assert.Equal(t, uint(50), conf.NotifyBatchSize)
		assert.Empty(t, conf.RedisAddr)
	})

	t.Run("env overrides flags", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "postgres://env/cashbox")
		t.Setenv("JWT_SECRET", "env-secret")
		t.Setenv("RUN_ADDRESS", ":9090")
		t.Setenv("IDEMPOTENCY_TTL", "1h")
		t.Setenv("NOTIFY_WORKERS", "12")

		conf, err := loadConfig([]string{"-a", ":8000", "-d", "postgres://flag/cashbox", "-notify-workers", "3",
			"-r", "localhost:6379"})
		require.NoError(t, err)
		assert.Equal(t, ":9090", conf.RunAddress)
		assert.Equal(t, "postgres://env/cashbox", conf.DatabaseDSN)
		assert.Equal(t, time.Hour, conf.IdempotencyTTL)
		assert.Equal(t, uint(12), conf.NotifyWorkers)
		assert.Equal(t, "localhost:6379", conf.RedisAddr)
	})

	t.Run("missing dsn", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "")
		t.Setenv("JWT_SECRET", "secret")

		_, err := loadConfig(nil)
		require.Error(t, err)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "postgres://localhost/cashbox")
		t.Setenv("JWT_SECRET", "")

		_, err := loadConfig(nil)
		require.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "postgres://localhost/cashbox")
		t.Setenv("JWT_SECRET", "secret")

		_, err := loadConfig([]string{"-unknown"})
		require.Error(t, err)
	})
}
