package interfaces

// EnvelopeBuilder wraps a notification payload with identity metadata and serializes it. The caller's payload is
// never modified; a new value is composed.
//
// Implemented by service.envelopeBuilder (flat or nested shape, fixed at construction).
// Called from service.campaignClient.NotifyCampaignServer and NotifyScreen.
//
//go:generate moq -stub -out mock/envelope_builder.go -pkg mock . EnvelopeBuilder
type EnvelopeBuilder interface {
	// Build returns the JSON body for payload sent on behalf of identity (already resolved, raw).
	// Returns: (body, nil) on success; (nil, error) when payload cannot be serialized.
	Build(payload map[string]any, identity string) ([]byte, error)
}
