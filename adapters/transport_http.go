package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	"campaignclient/domain"
	"campaignclient/helpers"
	"campaignclient/interfaces"
)

const (
	contentTypeJSON = "application/json"
	headerRequestID = "X-Request-ID"
)

// TransportHTTP creates an interfaces.Transport over client. Panics on nil client.
//
// Parameter client - HTTP client; its own Timeout applies when the request context has no deadline.
//
// Returns: interfaces.Transport (*transportHTTP).
//
// Called from cmd/campaign-probe and by hosts building the campaign client.
func TransportHTTP(client *http.Client) interfaces.Transport {
	return &transportHTTP{
		client: helpers.NilPanic(client, "adapters.transport_http.go: http client is required"),
	}
}

// transportHTTP implements interfaces.Transport. Every request is sent as "http://host:port" + path with a JSON
// content type; the path is already percent-encoded and goes out unchanged.
type transportHTTP struct {
	client *http.Client
}

// Do sends req and reads the whole response body.
//
// Returns: (response, nil) for any status; (zero, error) when the request cannot be built, sent or read.
//
// Called from service.dispatcher.Send.
func (t *transportHTTP) Do(ctx context.Context, req domain.TransportRequest) (domain.TransportResponse, error) {
	reqURL := "http://" + net.JoinHostPort(req.Host, strconv.Itoa(req.Port)) + req.Path

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), reqURL, body)
	if err != nil {
		return domain.TransportResponse{}, fmt.Errorf("build request %s %s: %w", req.Method, reqURL, err)
	}
	httpReq.Header.Set("Content-Type", contentTypeJSON)
	httpReq.Header.Set("Accept", contentTypeJSON)
	if req.RequestID != "" {
		httpReq.Header.Set(headerRequestID, req.RequestID)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return domain.TransportResponse{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.TransportResponse{}, fmt.Errorf("read response of %s %s: %w", req.Method, reqURL, err)
	}
	return domain.TransportResponse{StatusCode: resp.StatusCode, Body: string(data)}, nil
}
