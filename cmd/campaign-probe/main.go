// Package main is campaign-probe: it builds a campaign client from CAMPAIGN_CONFIG_PATH, checks that the campaign
// server is online and logs the scenarios, ships and briefing it offers. Exits 1 when the server is offline.
package main

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"time"

	"campaignclient/adapters"
	"campaignclient/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		level.Warn(logger).Log("msg", "failed to read .env", "err", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "configuration loaded", "mode", cfg.Client.Mode, "role", cfg.IdentityRole,
		"envelope", cfg.Client.Envelope)

	client, err := service.NewCampaignClientFromConfig(
		cfg.Client,
		adapters.TransportHTTP(&http.Client{Timeout: 30 * time.Second}),
		adapters.IdentityFor(cfg.IdentityRole, cfg.IdentityName),
		logger,
	)
	if err != nil {
		level.Error(logger).Log("msg", "failed to build campaign client", "err", err)
		os.Exit(1)
	}

	code := runProbe(client, logger)
	if err := client.Close(); err != nil {
		level.Warn(logger).Log("msg", "failed to close campaign client", "err", err)
	}
	os.Exit(code)
}
