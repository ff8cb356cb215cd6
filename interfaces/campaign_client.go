package interfaces

import "campaignclient/domain"

// CampaignClient is the public operation set the game server or proxy uses to talk to the campaign server.
// Every operation degrades to an empty result when the server is unavailable or answers unexpectedly; nothing
// here returns an error or panics on server misbehaviour.
//
// Implemented by service.campaignClient. Constructed once in cmd/campaign-probe (or by the host process) and passed
// to every component that reports to the campaign server.
//
//go:generate moq -stub -out mock/campaign_client.go -pkg mock . CampaignClient
type CampaignClient interface {
	// IsOnline sends GET / and reports whether the JSON field "message" equals domain.Greeting.
	IsOnline() bool

	// NotifyCampaignServer posts payload wrapped in the configured envelope to /{event}, fire-and-forget.
	NotifyCampaignServer(event string, payload map[string]any)

	// NotifyScreen reports the UI screen currently shown, as a "screen" notification.
	NotifyScreen(screen string)

	// GetScenarios returns the "scenarios" array of GET /scenarios/{id}; nil on failure.
	GetScenarios() []string

	// GetScenarioInfo returns the "scenarioInfo" object of GET /scenario_info/{id}/{name}; nil on failure.
	GetScenarioInfo(name string) map[string]string

	// GetScenarioSettings returns GET /scenario_settings/{id}/{name} as option → allowed values; nil on failure.
	GetScenarioSettings(name string) map[string][]string

	// GetShips returns the "ships" array of GET /ships_available/{id}; nil on failure.
	GetShips() []string

	// GetCampaign returns the campaign state object of GET /campaign/{id}/{name}; nil on failure.
	GetCampaign(name string) map[string]any

	// GetBriefing returns the text body of GET /briefing/{id}; "" on failure.
	GetBriefing() string

	// SpawnShipOnProxy posts spawn to /proxySpawn, fire-and-forget.
	SpawnShipOnProxy(spawn domain.ShipSpawn)

	// DestroyShipOnProxy posts {server_ip, callsign} to /proxyDestroy, fire-and-forget.
	DestroyShipOnProxy(serverIP, callsign string)

	// CampaignServerURL returns the configured campaign server address for display.
	CampaignServerURL() string

	// Close waits for queued fire-and-forget requests and stops the worker pool. Idempotent.
	Close() error
}
