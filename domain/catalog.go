package domain

import "time"

// Catalog is the campaign data served by the stub server, loaded from YAML. ScenarioInfo, ScenarioSettings and
// Campaigns are keyed by scenario or campaign name; the same data is served to every scope id.
type Catalog struct {
	Greeting         string                         `yaml:"greeting"`
	Scenarios        []string                       `yaml:"scenarios"`
	ScenarioInfo     map[string]map[string]string   `yaml:"scenario_info"`
	ScenarioSettings map[string]map[string][]string `yaml:"scenario_settings"`
	Ships            []string                       `yaml:"ships"`
	Campaigns        map[string]map[string]any      `yaml:"campaigns"`
	Briefing         string                         `yaml:"briefing"`
}

// RecordedEvent is a notification or proxy command received by the stub server.
type RecordedEvent struct {
	ID         string         `json:"id"`
	Event      string         `json:"event"`
	Path       string         `json:"path"`
	Body       map[string]any `json:"body"`
	ReceivedAt time.Time      `json:"received_at"`
}
