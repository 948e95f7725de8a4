package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Environment     string
	OTelServiceName string
	OTelEndpoint    string
	LotName         string
	LotAddress      string
	DefaultStrategy string
}

// Load reads a .env file if present, then the environment, falling
// back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            envOr("APP_PORT", "8080"),
		Environment:     envOr("APP_ENVIRONMENT", "development"),
		OTelServiceName: envOr("OTEL_SERVICE_NAME", "parking-garage"),
		OTelEndpoint:    envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
		LotName:         envOr("LOT_NAME", "Sky High Parking"),
		LotAddress:      envOr("LOT_ADDRESS", "123 Main Street, Tech City"),
		DefaultStrategy: envOr("SLOT_STRATEGY", "nearest"),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
