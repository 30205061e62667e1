package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Registration Web", cfg.AppName)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "./storage/uploads", cfg.UploadPath)
	assert.Equal(t, "./storage/exports", cfg.ExportPath)
	assert.Equal(t, "http://api.exchangeratesapi.io/v1", cfg.ExchangeAPIURL)
	assert.Equal(t, "https://httpbin.org/uuid", cfg.UUIDAPIURL)
	assert.Equal(t, 10*time.Second, cfg.LookupTimeout)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("UPLOAD_MAX_SIZE", "1024")
	t.Setenv("LOOKUP_TIMEOUT", "3s")
	t.Setenv("EXCHANGE_API_URL", "http://localhost:1234/v1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, 1024, cfg.UploadMaxSize)
	assert.Equal(t, 3*time.Second, cfg.LookupTimeout)
	assert.Equal(t, "http://localhost:1234/v1", cfg.ExchangeAPIURL)
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("UPLOAD_MAX_SIZE", "not-a-number")
	t.Setenv("LOOKUP_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 104857600, cfg.UploadMaxSize)
	assert.Equal(t, 10*time.Second, cfg.LookupTimeout)
}
