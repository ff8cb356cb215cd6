package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"campaignclient/adapters/myredis"
)

// Env variable names.
const (
	envHTTPPort    = "SERVICE_PORT_HTTP"
	envCatalogPath = "CATALOG_PATH"
	envRedisAddr   = "REDIS_ADDR"
	envEventTTLMs  = "EVENT_TTL_MS"
)

const defaultEventTTL = time.Hour

// StubConfig holds the stub server settings. An empty Redis.Addr keeps recorded events in memory.
type StubConfig struct {
	HTTPPort    int
	CatalogPath string
	Redis       myredis.Config
	EventTTL    time.Duration
}

// LoadConfig loads configuration from environment variables. SERVICE_PORT_HTTP and CATALOG_PATH are required;
// REDIS_ADDR and EVENT_TTL_MS (default one hour) are optional.
func LoadConfig() (*StubConfig, error) {
	httpPortStr := strings.TrimSpace(os.Getenv(envHTTPPort))
	if httpPortStr == "" {
		return nil, fmt.Errorf("%s is required", envHTTPPort)
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envHTTPPort, err)
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}

	catalogPath := strings.TrimSpace(os.Getenv(envCatalogPath))
	if catalogPath == "" {
		return nil, fmt.Errorf("%s is required", envCatalogPath)
	}

	eventTTL := defaultEventTTL
	if ttlStr := strings.TrimSpace(os.Getenv(envEventTTLMs)); ttlStr != "" {
		ttlMs, err := strconv.Atoi(ttlStr)
		if err != nil || ttlMs <= 0 {
			return nil, fmt.Errorf("%s must be a positive number of milliseconds", envEventTTLMs)
		}
		eventTTL = time.Duration(ttlMs) * time.Millisecond
	}

	return &StubConfig{
		HTTPPort:    httpPort,
		CatalogPath: catalogPath,
		Redis:       myredis.Config{Addr: strings.TrimSpace(os.Getenv(envRedisAddr))},
		EventTTL:    eventTTL,
	}, nil
}
