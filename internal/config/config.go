package config

import (
	"strings"
	"time"

	"bookswap/internal/storage"
	"bookswap/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Auth
		Storage
		Broker
		AI
		Log             logger.Log
		ShutdownTimeout time.Duration
	}

	HTTP struct {
		Port string
	}
	Auth struct {
		JWTSecret   string
		TokenExpiry time.Duration
	}
	Storage struct {
		Driver              string
		SQLitePath          string
		DatabaseDSN         string
		FirestoreProject    string
		FirestoreCollection string
	}
	Broker struct {
		RabbitMQURL  string   // empty disables the RabbitMQ relay
		KafkaBrokers []string // empty disables the Kafka relay
		KafkaTopic   string
	}
	AI struct {
		GeminiAPIKey  string
		GeminiModel   string
		GeminiBaseURL string
		Timeout       time.Duration
		RatePerSecond float64
	}
)

// StorageOptions converts the storage section into storage.Options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Driver:              c.Storage.Driver,
		SQLitePath:          c.Storage.SQLitePath,
		PostgresDSN:         c.Storage.DatabaseDSN,
		FirestoreProject:    c.Storage.FirestoreProject,
		FirestoreCollection: c.Storage.FirestoreCollection,
	}
}

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables win.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_EXPIRY", "24h")
	v.SetDefault("STORAGE_DRIVER", storage.DriverSQLite)
	v.SetDefault("SQLITE_PATH", "bookswap.db")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("FIRESTORE_PROJECT", "")
	v.SetDefault("FIRESTORE_COLLECTION", "bookswap")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "bookswap-events")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_BASE_URL", "")
	v.SetDefault("AI_TIMEOUT", "8s")
	v.SetDefault("AI_RATE_PER_SECOND", 2)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DEVELOPMENT", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")

	return &Config{
		HTTP: HTTP{
			Port: v.GetString("APP_PORT"),
		},
		Auth: Auth{
			JWTSecret:   v.GetString("JWT_SECRET"),
			TokenExpiry: v.GetDuration("JWT_EXPIRY"),
		},
		Storage: Storage{
			Driver:              v.GetString("STORAGE_DRIVER"),
			SQLitePath:          v.GetString("SQLITE_PATH"),
			DatabaseDSN:         v.GetString("DATABASE_DSN"),
			FirestoreProject:    v.GetString("FIRESTORE_PROJECT"),
			FirestoreCollection: v.GetString("FIRESTORE_COLLECTION"),
		},
		Broker: Broker{
			RabbitMQURL:  v.GetString("RABBITMQ_URL"),
			KafkaBrokers: splitList(v.GetString("KAFKA_BROKERS")),
			KafkaTopic:   v.GetString("KAFKA_TOPIC"),
		},
		AI: AI{
			GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
			GeminiModel:   v.GetString("GEMINI_MODEL"),
			GeminiBaseURL: v.GetString("GEMINI_BASE_URL"),
			Timeout:       v.GetDuration("AI_TIMEOUT"),
			RatePerSecond: v.GetFloat64("AI_RATE_PER_SECOND"),
		},
		Log: logger.Log{
			Level:       v.GetString("LOG_LEVEL"),
			Development: v.GetBool("LOG_DEVELOPMENT"),
		},
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
