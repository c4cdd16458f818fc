package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikolayk812/cartview/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":5001", cfg.HTTP.Addr)
	assert.Equal(t, "guest", cfg.HTTP.DefaultOwnerID)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "http://localhost:5001", cfg.Client.BackendURL)
	assert.Equal(t, "cart.checkout-completed", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.True(t, cfg.Database.RunMigrations)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_DotEnv(t *testing.T) {
	// godotenv never overrides variables that are already set
	t.Setenv("CART_OWNER_ID", "")
	require.NoError(t, os.Unsetenv("CART_OWNER_ID"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CART_OWNER_ID=alice\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.Client.OwnerID)

	require.NoError(t, os.Unsetenv("CART_OWNER_ID"))
}

func TestSlogLevel_Invalid(t *testing.T) {
	_, err := config.Config{LogLevel: "loud"}.SlogLevel()
	require.Error(t, err)
}
