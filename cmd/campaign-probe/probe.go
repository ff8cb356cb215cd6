package main

import (
	"campaignclient/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// runProbe checks the campaign server and logs what it offers to this identity.
//
// Returns: the process exit code, 1 when the server is offline and 0 otherwise. Empty query results are logged
// but are not failures.
func runProbe(client interfaces.CampaignClient, logger log.Logger) int {
	logger = log.With(logger, "server", client.CampaignServerURL())
	if !client.IsOnline() {
		level.Error(logger).Log("msg", "campaign server is offline")
		return 1
	}

	scenarios := client.GetScenarios()
	level.Info(logger).Log("msg", "scenarios", "count", len(scenarios), "names", scenarios)
	for _, name := range scenarios {
		level.Info(logger).Log("msg", "scenario", "name", name,
			"info", client.GetScenarioInfo(name),
			"settings", client.GetScenarioSettings(name))
	}

	ships := client.GetShips()
	level.Info(logger).Log("msg", "ships", "count", len(ships), "names", ships)

	if briefing := client.GetBriefing(); briefing != "" {
		level.Info(logger).Log("msg", "briefing", "text", briefing)
	}
	return 0
}
