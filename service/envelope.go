package service

import (
	"encoding/json"
	"fmt"

	"campaignclient/domain"
	"campaignclient/helpers"
	"campaignclient/interfaces"
)

// envelopeBuilder implements interfaces.EnvelopeBuilder for one domain.EnvelopeShape, fixed at construction so a
// client never mixes the two wire formats against the same server. instanceName is read from the resolver (raw).
type envelopeBuilder struct {
	shape    domain.EnvelopeShape
	resolver interfaces.AddressResolver
}

// NewEnvelopeBuilder creates the builder for shape. Panics on nil resolver or unknown shape.
//
// Parameters: shape - flat or nested; resolver - source of the raw instance name for the nested shape.
//
// Returns: interfaces.EnvelopeBuilder (*envelopeBuilder).
//
// Called from NewCampaignClientFromConfig.
func NewEnvelopeBuilder(shape domain.EnvelopeShape, resolver interfaces.AddressResolver) interfaces.EnvelopeBuilder {
	if shape != domain.EnvelopeFlat && shape != domain.EnvelopeNested {
		panic(fmt.Sprintf("service.envelope.go: unknown envelope shape %q", shape))
	}
	return &envelopeBuilder{
		shape:    shape,
		resolver: helpers.NilPanic(resolver, "service.envelope.go: resolver is required"),
	}
}

// Build composes the envelope and serializes it to compact JSON.
//
// Flat: {"scenario_info": payload, "server_name": URLEncode(identity)}.
// Nested: payload keys plus "server": {"instance_name": raw instance name, "crew_name": identity}; a "server" key in
// payload is overwritten in the composed value only.
//
// Returns: (body, nil); (nil, error) when payload holds values encoding/json cannot marshal.
//
// Called from campaignClient.NotifyCampaignServer and NotifyScreen.
func (b *envelopeBuilder) Build(payload map[string]any, identity string) ([]byte, error) {
	var envelope map[string]any
	switch b.shape {
	case domain.EnvelopeFlat:
		envelope = map[string]any{
			"scenario_info": payload,
			"server_name":   helpers.URLEncode(identity),
		}
	default:
		envelope = make(map[string]any, len(payload)+1)
		for k, v := range payload {
			envelope[k] = v
		}
		envelope["server"] = map[string]any{
			"instance_name": b.resolver.InstanceName(),
			"crew_name":     identity,
		}
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshal %s envelope: %w", b.shape, err)
	}
	return body, nil
}
