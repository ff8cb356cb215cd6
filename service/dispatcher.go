package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"campaignclient/domain"
	"campaignclient/helpers"
	"campaignclient/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofrs/uuid"
)

// dispatcher implements interfaces.Dispatcher. Every request resolves the target through resolver (so a malformed
// legacy URL fails before the transport is touched), runs under timeout (0 = transport default) and is tagged with
// a fresh request id. Failures are logged and become "".
type dispatcher struct {
	resolver  interfaces.AddressResolver
	transport interfaces.Transport
	pool      interfaces.WorkerPool
	timeout   time.Duration
	logger    log.Logger
}

// NewDispatcher creates the dispatcher. Panics on nil resolver, transport, pool or logger.
//
// Parameters: resolver - campaign server target; transport - HTTP capability (adapters.TransportHTTP); pool - runs
// fire-and-forget requests; timeout - per-request timeout from domain.ClientConfig.Timeout (0 = none added);
// logger - request and failure logs.
//
// Returns: interfaces.Dispatcher (*dispatcher).
//
// Called from NewCampaignClientFromConfig.
func NewDispatcher(
	resolver interfaces.AddressResolver,
	transport interfaces.Transport,
	pool interfaces.WorkerPool,
	timeout time.Duration,
	logger log.Logger,
) interfaces.Dispatcher {
	return &dispatcher{
		resolver:  helpers.NilPanic(resolver, "service.dispatcher.go: resolver is required"),
		transport: helpers.NilPanic(transport, "service.dispatcher.go: transport is required"),
		pool:      helpers.NilPanic(pool, "service.dispatcher.go: pool is required"),
		timeout:   timeout,
		logger:    log.With(helpers.NilPanic(logger, "service.dispatcher.go: logger is required"), "component", "dispatcher"),
	}
}

// Send performs req and blocks until the transport returns or times out.
//
// Parameter req - path relative to the target (already encoded), method and optional body.
//
// Returns: the response body on a 2xx status; "" after logging one warning on malformed_url, transport errors and
// non-2xx statuses.
//
// Called from SendAsync goroutines, worker pool tasks (FireAndForget) and by callers that want a blocking call.
func (d *dispatcher) Send(req domain.OutboundRequest) string {
	target, err := d.resolver.Target()
	if err != nil {
		level.Warn(d.logger).Log("msg", "campaign server address unusable", "path", req.Path, "err", err)
		return ""
	}
	treq := domain.TransportRequest{
		Host:      target.Host,
		Port:      target.Port,
		Method:    req.Method,
		Path:      target.BasePath + req.Path,
		Body:      req.Body,
		RequestID: newRequestID(),
	}
	logger := log.With(d.logger, "request_id", treq.RequestID, "target", targetAddress(target), "method", treq.Method, "path", treq.Path)
	level.Info(logger).Log("msg", "sending http request")
	if req.Method == domain.MethodPost {
		level.Debug(logger).Log("msg", "request body", "body", string(req.Body))
	}

	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	resp, err := d.transport.Do(ctx, treq)
	if err != nil {
		level.Warn(logger).Log("msg", "http request failed", "err", NewTransportFailure("request not completed", err), "body", string(req.Body))
		return ""
	}
	if !resp.Success() {
		level.Warn(logger).Log("msg", "http request failed", "err", NewTransportFailure("unexpected status", nil), "status", resp.StatusCode, "body", string(req.Body), "response", resp.Body)
		return ""
	}
	return resp.Body
}

// SendAsync starts Send on a new goroutine and returns a channel that receives the body once.
//
// Parameter req - copied into the goroutine; the caller may reuse its variables immediately.
//
// Returns: buffered channel (capacity 1), so the goroutine never leaks when the caller stops listening.
//
// Called from GetJSON and campaignClient.GetBriefing.
func (d *dispatcher) SendAsync(req domain.OutboundRequest) <-chan string {
	result := make(chan string, 1)
	req.Body = cloneBytes(req.Body)
	go func() {
		result <- d.Send(req)
	}()
	return result
}

// FireAndForget queues Send on the worker pool and returns immediately; the body is discarded.
//
// Parameter req - copied into the task.
//
// Called from campaignClient notifications and proxy commands.
func (d *dispatcher) FireAndForget(req domain.OutboundRequest) {
	req.Body = cloneBytes(req.Body)
	err := d.pool.Submit(func() {
		_ = d.Send(req)
	})
	if err != nil {
		reason := "dropped"
		if errors.Is(err, ErrWorkerPoolClosed) {
			reason = "client closed"
		}
		level.Warn(d.logger).Log("msg", "fire-and-forget request dropped", "reason", reason, "method", req.Method, "path", req.Path, "err", err)
	}
}

// GetJSON performs a GET of path (awaiting SendAsync) and parses the body.
//
// Parameter path - relative, already encoded.
//
// Returns: JSONResult{Value} on valid JSON; JSONResult{Discarded: true} otherwise (failed requests yield "" which is
// not valid JSON), with the raw body and parser error logged at error level.
//
// Called from campaignClient for every structured query and IsOnline.
func (d *dispatcher) GetJSON(path string) domain.JSONResult {
	body := <-d.SendAsync(domain.Get(path))
	var value any
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		level.Error(d.logger).Log("msg", "can not parse response", "path", path, "body", body, "err", NewJSONParseFailure("invalid json body", err))
		return domain.JSONResult{Discarded: true}
	}
	return domain.JSONResult{Value: value}
}

// newRequestID returns a UUID v4 string, or "" if the random source fails.
func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
