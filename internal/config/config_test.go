package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "parking-garage", cfg.OTelServiceName)
	assert.Equal(t, "http://localhost:4318", cfg.OTelEndpoint)
	assert.Equal(t, "Sky High Parking", cfg.LotName)
	assert.Equal(t, "123 Main Street, Tech City", cfg.LotAddress)
	assert.Equal(t, "nearest", cfg.DefaultStrategy)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENVIRONMENT", "production")
	t.Setenv("SLOT_STRATEGY", "optimized")
	t.Setenv("LOT_NAME", "Downtown Garage")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "optimized", cfg.DefaultStrategy)
	assert.Equal(t, "Downtown Garage", cfg.LotName)
	assert.False(t, cfg.IsDevelopment())
}
