// Package main is campaign-stub, a development stand-in for the campaign server. It serves the campaign path
// surface from a YAML catalog, validates requests against the embedded OpenAPI document and records notifications
// and proxy commands in Redis (REDIS_ADDR) or in memory; GET /_events lists them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campaignclient/adapters/memory"
	"campaignclient/adapters/myredis"
	"campaignclient/api"
	"campaignclient/domain"
	"campaignclient/handlers"
	"campaignclient/interfaces"
	"campaignclient/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
)

const eventKeyPrefix = "campaign_event"

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting campaign stub")

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		level.Warn(logger).Log("msg", "Failed to read .env", "err", err)
	}

	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"catalog_path", config.CatalogPath,
		"redis_addr", config.Redis.Addr,
		"event_ttl", config.EventTTL,
	)

	catalog, err := service.LoadCatalog(config.CatalogPath)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load catalog", "err", err)
		os.Exit(1)
	}

	var events interfaces.EventStore[domain.RecordedEvent]
	if config.Redis.Addr == "" {
		events = memory.NewStore[domain.RecordedEvent](time.Now)
		level.Info(logger).Log("msg", "Recording events in memory")
	} else {
		redisClient, err := myredis.NewClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")
		events = myredis.NewEventStore(redisClient, eventKeyPrefix)
	}

	doc, err := api.Load()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
		os.Exit(1)
	}
	validator, err := api.RequestValidator(doc)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to build request validator", "err", err)
		os.Exit(1)
	}

	var e *echo.Echo
	{
		clock := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })
		httpServer := handlers.NewHTTPServer(service.NewStaticCatalog(catalog), events, clock,
			int(config.EventTTL/time.Millisecond), logger)

		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, httpServer, validator)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
