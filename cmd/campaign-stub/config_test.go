package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setStubEnv(t *testing.T, port, catalog, redisAddr, ttl string) {
	t.Helper()
	t.Setenv(envHTTPPort, port)
	t.Setenv(envCatalogPath, catalog)
	t.Setenv(envRedisAddr, redisAddr)
	t.Setenv(envEventTTLMs, ttl)
}

func TestLoadConfig_Ok(t *testing.T) {
	setStubEnv(t, "8080", "/etc/campaign/catalog.yaml", "", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "/etc/campaign/catalog.yaml", cfg.CatalogPath)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, time.Hour, cfg.EventTTL)
}

func TestLoadConfig_RedisAndTTL(t *testing.T) {
	setStubEnv(t, "9000", "catalog.yaml", "redis://localhost:6379", "1500")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 1500*time.Millisecond, cfg.EventTTL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		catalog string
		ttl     string
		wantErr string
	}{
		{"port_missing", "", "catalog.yaml", "", "SERVICE_PORT_HTTP is required"},
		{"port_not_number", "http", "catalog.yaml", "", "invalid SERVICE_PORT_HTTP"},
		{"port_out_of_range", "70000", "catalog.yaml", "", "SERVICE_PORT_HTTP must be 1-65535"},
		{"catalog_missing", "8080", "", "", "CATALOG_PATH is required"},
		{"ttl_zero", "8080", "catalog.yaml", "0", "EVENT_TTL_MS must be a positive number"},
		{"ttl_not_number", "8080", "catalog.yaml", "soon", "EVENT_TTL_MS must be a positive number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setStubEnv(t, tt.port, tt.catalog, "", tt.ttl)
			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
