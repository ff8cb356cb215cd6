package interfaces

import (
	"context"

	"campaignclient/domain"
)

// Transport performs one HTTP exchange with the campaign server. It is the black-box HTTP capability under the
// dispatcher: it must send GET and POST with a JSON content type and honour the deadline of ctx.
//
// Implemented by adapters.TransportHTTP. Called from service.dispatcher.Send for every request.
//
//go:generate moq -stub -out mock/transport.go -pkg mock . Transport
type Transport interface {
	// Do sends req to req.Host:req.Port and returns the status code and the raw body.
	// Parameters: ctx - carries the per-request timeout (no deadline = transport default); req - fully resolved request (path already encoded).
	// Returns: (response, nil) whenever a response was received, whatever its status; (zero, error) on connection, timeout or read failure.
	// Called from service.dispatcher.Send.
	Do(ctx context.Context, req domain.TransportRequest) (domain.TransportResponse, error)
}
