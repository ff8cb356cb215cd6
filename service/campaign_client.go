package service

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"

	"campaignclient/domain"
	"campaignclient/helpers"
	"campaignclient/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mitchellh/mapstructure"
)

const (
	endpointScenarios        = "scenarios"
	endpointScenarioInfo     = "scenario_info"
	endpointScenarioSettings = "scenario_settings"
	endpointShipsAvailable   = "ships_available"
	endpointCampaign         = "campaign"
	endpointBriefing         = "briefing"
	endpointProxySpawn       = "proxySpawn"
	endpointProxyDestroy     = "proxyDestroy"
	eventScreen              = "screen"
)

// campaignClient implements interfaces.CampaignClient as thin compositions of resolver (paths), envelopes (POST
// bodies) and dispatcher (transport). identity is optional: nil or an empty name resolves to domain.UnknownIdentity.
// pool is owned by the client and closed by Close.
type campaignClient struct {
	resolver   interfaces.AddressResolver
	dispatcher interfaces.Dispatcher
	envelopes  interfaces.EnvelopeBuilder
	identity   interfaces.IdentityProvider
	pool       interfaces.WorkerPool
	serverURL  string
	logger     log.Logger
}

// NewCampaignClient assembles the facade from its collaborators. Panics on nil resolver, dispatcher, envelopes,
// pool or logger and on empty serverURL; identity may be nil.
//
// Parameters: resolver, dispatcher, envelopes, pool - see NewAddressResolver, NewDispatcher, NewEnvelopeBuilder,
// NewWorkerPool (pool must be the one the dispatcher submits to); identity - who is asking; serverURL - display form
// of the configured address; logger - query and shape logs.
//
// Returns: interfaces.CampaignClient (*campaignClient).
//
// Called from NewCampaignClientFromConfig and tests that need custom collaborators.
func NewCampaignClient(
	resolver interfaces.AddressResolver,
	dispatcher interfaces.Dispatcher,
	envelopes interfaces.EnvelopeBuilder,
	identity interfaces.IdentityProvider,
	pool interfaces.WorkerPool,
	serverURL string,
	logger log.Logger,
) interfaces.CampaignClient {
	return &campaignClient{
		resolver:   helpers.NilPanic(resolver, "service.campaign_client.go: resolver is required"),
		dispatcher: helpers.NilPanic(dispatcher, "service.campaign_client.go: dispatcher is required"),
		envelopes:  helpers.NilPanic(envelopes, "service.campaign_client.go: envelopes is required"),
		identity:   identity,
		pool:       helpers.NilPanic(pool, "service.campaign_client.go: pool is required"),
		serverURL:  helpers.StrPanic(serverURL, "service.campaign_client.go: serverURL is required"),
		logger:     log.With(helpers.NilPanic(logger, "service.campaign_client.go: logger is required"), "component", "campaign_client"),
	}
}

// NewCampaignClientFromConfig validates cfg, applies defaults and wires resolver, worker pool, dispatcher, envelope
// builder and facade. This is the single place that decides how a client is built, so every call site is identical
// whatever the address mode.
//
// Parameters: cfg - client config; transport - HTTP capability (adapters.TransportHTTP); identity - may be nil;
// logger - shared by all components (each adds its own "component" key).
//
// Returns: (client, nil); (nil, error) when cfg.Validate fails.
//
// Called from cmd/campaign-probe and by host processes embedding the client.
func NewCampaignClientFromConfig(
	cfg domain.ClientConfig,
	transport interfaces.Transport,
	identity interfaces.IdentityProvider,
	logger log.Logger,
) (interfaces.CampaignClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid campaign client config: %w", err)
	}
	cfg = cfg.WithDefaults()
	resolver := NewAddressResolver(cfg)
	pool := NewWorkerPool(cfg.Workers, cfg.QueueSize, logger)
	dispatcher := NewDispatcher(resolver, transport, pool, cfg.Timeout(), logger)
	envelopes := NewEnvelopeBuilder(cfg.Envelope, resolver)
	return NewCampaignClient(resolver, dispatcher, envelopes, identity, pool, campaignServerURL(cfg), logger), nil
}

// IsOnline sends GET / and compares the "message" field with domain.Greeting.
//
// Returns: true when the greeting matches; false on any other content, failed request or invalid JSON.
//
// Called from cmd/campaign-probe and by the host at startup.
func (c *campaignClient) IsOnline() bool {
	result := c.dispatcher.GetJSON(c.resolver.Path(""))
	if msg, _ := result.Field("message").(string); !result.Discarded && msg == domain.Greeting {
		level.Info(c.logger).Log("msg", "connected to campaign server", "server", c.serverURL)
		return true
	}
	level.Warn(c.logger).Log("msg", "connection to campaign server failed", "server", c.serverURL, "response", dump(result))
	return false
}

// NotifyCampaignServer wraps payload in the configured envelope and posts it to /{event} without waiting.
//
// Parameters: event - logical endpoint name (used verbatim, e.g. "scenario_start"); empty events are dropped with
// a warning; payload - event data, not modified.
//
// Called by the host on game events.
func (c *campaignClient) NotifyCampaignServer(event string, payload map[string]any) {
	if event == "" {
		level.Warn(c.logger).Log("msg", "notification without event name dropped")
		return
	}
	body, err := c.envelopes.Build(payload, c.identityName())
	if err != nil {
		level.Error(c.logger).Log("msg", "notification dropped", "event", event, "err", err)
		return
	}
	c.dispatcher.FireAndForget(domain.Post(c.resolver.Path(event), body))
}

// NotifyScreen reports the screen currently shown as a "screen" notification with payload {"screen": screen}.
func (c *campaignClient) NotifyScreen(screen string) {
	c.NotifyCampaignServer(eventScreen, map[string]any{"screen": screen})
}

// GetScenarios returns the "scenarios" array of GET /scenarios/{id}.
//
// Returns: scenario names; nil on failure (logged).
func (c *campaignClient) GetScenarios() []string {
	level.Info(c.logger).Log("msg", "loading scenarios from campaign server")
	path := c.resolver.ScopedPath(endpointScenarios, c.identityName())
	var scenarios []string
	c.decodeField(path, "scenarios", &scenarios)
	return scenarios
}

// GetScenarioInfo returns the "scenarioInfo" object of GET /scenario_info/{id}/{name}.
//
// Returns: key → value; nil on failure (logged), including non-string values.
func (c *campaignClient) GetScenarioInfo(name string) map[string]string {
	path := c.resolver.ScopedPath(endpointScenarioInfo, c.identityName(), name)
	var info map[string]string
	c.decodeField(path, "scenarioInfo", &info)
	return info
}

// GetScenarioSettings returns the whole response of GET /scenario_settings/{id}/{name} as option → allowed values.
//
// Returns: settings; nil on failure (logged).
func (c *campaignClient) GetScenarioSettings(name string) map[string][]string {
	path := c.resolver.ScopedPath(endpointScenarioSettings, c.identityName(), name)
	var settings map[string][]string
	c.decodeField(path, "", &settings)
	return settings
}

// GetShips returns the "ships" array of GET /ships_available/{id}.
//
// Returns: ship template names; nil on failure (logged).
func (c *campaignClient) GetShips() []string {
	path := c.resolver.ScopedPath(endpointShipsAvailable, c.identityName())
	var ships []string
	c.decodeField(path, "ships", &ships)
	return ships
}

// GetCampaign returns the campaign state object of GET /campaign/{id}/{name}.
//
// Returns: the decoded object; nil on failure (logged).
func (c *campaignClient) GetCampaign(name string) map[string]any {
	path := c.resolver.ScopedPath(endpointCampaign, c.identityName(), name)
	var campaign map[string]any
	c.decodeField(path, "", &campaign)
	return campaign
}

// GetBriefing returns the plain text body of GET /briefing/{id}; "" on failure.
func (c *campaignClient) GetBriefing() string {
	path := c.resolver.ScopedPath(endpointBriefing, c.identityName())
	return <-c.dispatcher.SendAsync(domain.Get(path))
}

// SpawnShipOnProxy posts spawn to /proxySpawn without waiting.
func (c *campaignClient) SpawnShipOnProxy(spawn domain.ShipSpawn) {
	c.postCommand(endpointProxySpawn, spawn)
}

// DestroyShipOnProxy posts {server_ip, callsign} to /proxyDestroy without waiting.
func (c *campaignClient) DestroyShipOnProxy(serverIP, callsign string) {
	c.postCommand(endpointProxyDestroy, domain.ShipDestroy{ServerIP: serverIP, Callsign: callsign})
}

// CampaignServerURL returns the configured campaign server address.
func (c *campaignClient) CampaignServerURL() string {
	return c.serverURL
}

// Close drains queued fire-and-forget requests and stops the worker pool.
func (c *campaignClient) Close() error {
	return c.pool.Close()
}

// identityName resolves "who is asking" at call time.
func (c *campaignClient) identityName() string {
	if c.identity == nil {
		return domain.UnknownIdentity
	}
	if name := c.identity.DisplayName(); name != "" {
		return name
	}
	return domain.UnknownIdentity
}

// postCommand serializes body and posts it to /{endpoint} fire-and-forget.
func (c *campaignClient) postCommand(endpoint string, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		level.Error(c.logger).Log("msg", "proxy command dropped", "endpoint", endpoint, "err", err)
		return
	}
	c.dispatcher.FireAndForget(domain.Post(c.resolver.Path(endpoint), data))
}

// decodeField GETs path and decodes the value under field (or the whole document when field is "") into out with
// strict mapstructure rules. Nulls are rejected unless out is a free-form object. Returns false when out was left
// untouched.
//
// Parameters: path - scoped path; field - top-level key; out - pointer to the target (slice or map).
//
// A discarded body is already logged by the dispatcher; a missing field or wrong shape is logged here as
// malformed_response.
func (c *campaignClient) decodeField(path, field string, out any) bool {
	result := c.dispatcher.GetJSON(path)
	if result.Discarded {
		return false
	}
	raw := result.Value
	if field != "" {
		raw = result.Field(field)
	}
	if raw == nil {
		level.Error(c.logger).Log("msg", "unexpected response shape", "path", path, "field", field,
			"err", NewMalformedResponseError("missing field", nil), "response", dump(result))
		return false
	}
	if _, freeForm := out.(*map[string]any); !freeForm {
		if err := rejectNulls(raw); err != nil {
			level.Error(c.logger).Log("msg", "unexpected response shape", "path", path, "field", field,
				"err", err, "response", dump(result))
			return false
		}
	}
	if err := mapstructure.Decode(raw, out); err != nil {
		level.Error(c.logger).Log("msg", "unexpected response shape", "path", path, "field", field,
			"err", NewMalformedResponseError(fmt.Sprintf("cannot convert to %T", out), err), "response", dump(result))
		return false
	}
	level.Debug(c.logger).Log("msg", "campaign server response", "path", path, "response", dump(result))
	return true
}

// rejectNulls fails with malformed_response when any array element or object value in raw is null. mapstructure
// decodes a null input into the zero value, so typed results would otherwise hide them.
func rejectNulls(raw any) error {
	switch v := raw.(type) {
	case nil:
		return NewMalformedResponseError("null value", nil)
	case []any:
		for _, item := range v {
			if err := rejectNulls(item); err != nil {
				return err
			}
		}
	case map[string]any:
		for _, item := range v {
			if err := rejectNulls(item); err != nil {
				return err
			}
		}
	}
	return nil
}

// dump renders result compactly for logs.
func dump(result domain.JSONResult) string {
	if result.Discarded {
		return "<discarded>"
	}
	data, err := json.Marshal(result.Value)
	if err != nil {
		return fmt.Sprint(result.Value)
	}
	return string(data)
}

// campaignServerURL is the display form of the configured address.
func campaignServerURL(cfg domain.ClientConfig) string {
	if cfg.Mode == domain.AddressModeLegacyURL {
		return cfg.BaseURL
	}
	return "http://" + net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}
