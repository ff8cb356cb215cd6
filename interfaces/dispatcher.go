package interfaces

import "campaignclient/domain"

// Dispatcher issues requests to the campaign server synchronously, asynchronously or fire-and-forget and normalizes
// every failure to an empty result plus a log record. No method returns an error.
//
// Implemented by service.dispatcher. Called from service.campaignClient.
//
//go:generate moq -stub -out mock/dispatcher.go -pkg mock . Dispatcher
type Dispatcher interface {
	// Send blocks until the transport returns. Returns the body on a 2xx status; "" on any failure (non-2xx, transport
	// error, malformed legacy URL), which is indistinguishable from a legitimately empty body.
	Send(req domain.OutboundRequest) string

	// SendAsync runs Send on its own goroutine and returns at once. The channel yields the body exactly once.
	SendAsync(req domain.OutboundRequest) <-chan string

	// FireAndForget queues Send on the bounded worker pool and discards the result. Never blocks; when the pool is
	// saturated or closed the request is dropped with a warning.
	FireAndForget(req domain.OutboundRequest)

	// GetJSON performs a synchronous GET of path and parses the body. Returns JSONResult{Discarded: true} when the
	// body is not valid JSON (the raw body and parser error are logged).
	GetJSON(path string) domain.JSONResult
}
