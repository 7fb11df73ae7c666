// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	Addr string

	HistoryBackend string
	SQLitePath     string
	PostgresDSN    string

	KafkaBrokers []string
	KafkaTopic   string

	SuccessRate       float64
	SettlementLatency time.Duration
	AuthTimeout       time.Duration
	PriceTickInterval time.Duration
}

// Load reads the environment, after best-effort loading a local .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:              getEnv("FUNDMATE_ADDR", ":8080"),
		HistoryBackend:    getEnv("FUNDMATE_HISTORY_BACKEND", BackendMemory),
		SQLitePath:        getEnv("FUNDMATE_SQLITE_PATH", "fundmate.db"),
		PostgresDSN:       os.Getenv("FUNDMATE_POSTGRES_DSN"),
		KafkaTopic:        getEnv("FUNDMATE_KAFKA_TOPIC", "payment_events"),
		SuccessRate:       0.8,
		SettlementLatency: 2 * time.Second,
		AuthTimeout:       30 * time.Second,
		PriceTickInterval: 30 * time.Second,
	}

	if brokers := os.Getenv("FUNDMATE_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	var err error
	if cfg.SuccessRate, err = getFloat("FUNDMATE_SUCCESS_RATE", cfg.SuccessRate); err != nil {
		return nil, err
	}
	if cfg.SuccessRate < 0 || cfg.SuccessRate > 1 {
		return nil, fmt.Errorf("FUNDMATE_SUCCESS_RATE must be between 0 and 1")
	}
	if cfg.SettlementLatency, err = getDuration("FUNDMATE_SETTLEMENT_LATENCY", cfg.SettlementLatency); err != nil {
		return nil, err
	}
	if cfg.AuthTimeout, err = getDuration("FUNDMATE_AUTH_TIMEOUT", cfg.AuthTimeout); err != nil {
		return nil, err
	}
	if cfg.PriceTickInterval, err = getDuration("FUNDMATE_PRICE_TICK_INTERVAL", cfg.PriceTickInterval); err != nil {
		return nil, err
	}

	switch cfg.HistoryBackend {
	case BackendMemory, BackendSQLite:
	case BackendPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("FUNDMATE_POSTGRES_DSN is required for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.HistoryBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}
