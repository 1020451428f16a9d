// Package config loads runtime configuration for the brain binary from the
// environment, optionally via a .env file.
package config

import (
	"os"
	"strings"
)

// Config holds every setting the binary needs to wire the engine together.
type Config struct {
	// ListenAddr is the address the websocket server binds to.
	ListenAddr string

	// DatabaseDSN selects the catalog backend: when set, definitions are
	// loaded from Postgres; when empty, the bundled demo catalog is used.
	DatabaseDSN string

	// KafkaBrokers and KafkaTopic select the notify sink: when brokers are
	// set, count updates are written to Kafka; otherwise they're logged.
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from the environment. Missing optional values
// fall back to sensible local-run defaults.
func Load() Config {
	cfg := Config{
		ListenAddr:  getEnv("BRAIN_LISTEN_ADDR", ":8080"),
		DatabaseDSN: os.Getenv("BRAIN_DATABASE_DSN"),
		KafkaTopic:  getEnv("BRAIN_KAFKA_TOPIC", "reaction-counts"),
	}

	if brokers := os.Getenv("BRAIN_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

