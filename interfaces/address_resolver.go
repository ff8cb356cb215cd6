package interfaces

import "campaignclient/domain"

// AddressResolver turns configuration and logical endpoint names into the transport target and request paths.
// Structured configs (host/port) resolve immediately; a legacy base URL is parsed once on the first Target call.
//
// Implemented by service.addressResolver. Called from service.dispatcher (Target) and service.campaignClient (paths).
//
//go:generate moq -stub -out mock/address_resolver.go -pkg mock . AddressResolver
type AddressResolver interface {
	// Target returns host, port and base path of the campaign server.
	// Returns: (target, nil) on success; (zero, *service.CampaignError with code malformed_url) when the legacy base URL has no path separator or a bad port. The outcome is the same on every call.
	// Called from service.dispatcher.Send before contacting the transport.
	Target() (domain.Target, error)

	// Path builds "/" + endpoint followed by "/" + URLEncode(segment) for each segment. An empty endpoint with no segments yields "/".
	// Called from service.campaignClient for unscoped endpoints (notifications, proxy commands, liveness check).
	Path(endpoint string, segments ...string) string

	// ScopedPath is Path with a scope segment inserted after the endpoint: the pre-encoded instance name when one is
	// configured, otherwise URLEncode(identity).
	// Called from service.campaignClient for /scenarios, /scenario_info, /scenario_settings, /ships_available, /campaign, /briefing.
	ScopedPath(endpoint, identity string, segments ...string) string

	// InstanceName returns the raw (not encoded) instance name, empty when none is configured.
	// Called from service.envelopeBuilder for the nested envelope.
	InstanceName() string
}
