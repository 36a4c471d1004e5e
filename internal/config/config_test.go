package config_test

import (
	"testing"
	"time"

	"bookswap/internal/config"
	"bookswap/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, ":8080", cfg.HTTP.Port)
	assert.Equal(t, storage.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "bookswap-events", cfg.Broker.KafkaTopic)
	assert.Empty(t, cfg.Broker.KafkaBrokers)
	assert.Equal(t, 8*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenExpiry)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestNewConfig_Environment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("KAFKA_BROKERS", "k1:9092, ,k2:9092")
	t.Setenv("AI_TIMEOUT", "250ms")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg := config.NewConfig()

	assert.Equal(t, storage.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Broker.KafkaBrokers)
	assert.Equal(t, 250*time.Millisecond, cfg.AI.Timeout)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, storage.DriverMemory, cfg.StorageOptions().Driver)
}
