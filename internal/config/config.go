package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`

	HTTP     HTTPConfig
	Database DatabaseConfig
	Kafka    KafkaConfig
	Client   ClientConfig
}

type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" env-default:":5001"`
	GinMode         string        `env:"GIN_MODE" env-default:"debug"`
	DefaultOwnerID  string        `env:"DEFAULT_OWNER_ID" env-default:"guest" env-description:"owner used when X-Owner-ID is absent"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type DatabaseConfig struct {
	// empty URL selects the in-memory store
	URL           string `env:"DATABASE_URL"`
	RunMigrations bool   `env:"DATABASE_MIGRATE" env-default:"true"`
}

type KafkaConfig struct {
	// no brokers disables checkout events
	Brokers []string `env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `env:"KAFKA_CHECKOUT_TOPIC" env-default:"cart.checkout-completed"`
}

type ClientConfig struct {
	BackendURL string        `env:"CART_BACKEND_URL" env-default:"http://localhost:5001"`
	OwnerID    string        `env:"CART_OWNER_ID"`
	Timeout    time.Duration `env:"CART_REQUEST_TIMEOUT" env-default:"10s"`
}

// Load reads the environment, after merging the given .env files into it.
// Missing .env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	return cfg, nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level[%s] is not valid: %w", c.LogLevel, err)
	}

	return level, nil
}
