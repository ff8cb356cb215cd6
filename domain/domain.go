package domain

import "time"

const (
	// UnknownIdentity is the display name used when no identity provider is active or it reports an empty name.
	UnknownIdentity = "unknown"

	// Greeting is the value of the "message" field the campaign server returns on GET /.
	Greeting = "Hello Space"

	// LegacyRequestTimeout is the fixed per-request timeout of the legacy URL addressing mode.
	LegacyRequestTimeout = 10 * time.Second

	// DefaultHTTPPort is used when a legacy base URL carries no explicit port.
	DefaultHTTPPort = 80

	// DefaultWorkers and DefaultQueueSize bound fire-and-forget traffic when the config leaves them unset.
	DefaultWorkers   = 4
	DefaultQueueSize = 64
)
