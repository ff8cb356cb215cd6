package domain

// Method is the HTTP method of an outbound request. Only GET and POST are used by the campaign API.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// OutboundRequest is one call to the campaign server. Path is relative to the resolved Target and already encoded.
// Body is nil for GET.
type OutboundRequest struct {
	Path   string
	Method Method
	Body   []byte
}

// Get returns a GET request for path.
func Get(path string) OutboundRequest {
	return OutboundRequest{Path: path, Method: MethodGet}
}

// Post returns a POST request for path carrying body.
func Post(path string, body []byte) OutboundRequest {
	return OutboundRequest{Path: path, Method: MethodPost, Body: body}
}

// Target is the resolved campaign server address. BasePath is the URI part of a legacy base URL ("" otherwise)
// and is prefixed to every request path.
type Target struct {
	Host     string
	Port     int
	BasePath string
}

// TransportRequest is what the dispatcher hands to the transport: the full path and a request id for log correlation.
type TransportRequest struct {
	Host      string
	Port      int
	Method    Method
	Path      string
	Body      []byte
	RequestID string
}

// TransportResponse is the status and raw body of a completed HTTP exchange.
type TransportResponse struct {
	StatusCode int
	Body       string
}

// Success reports whether the status is 2xx.
func (r TransportResponse) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSONResult is a parsed response body. Discarded is true when the body was not valid JSON (including empty bodies
// of failed requests); Value is nil in that case.
type JSONResult struct {
	Value     any
	Discarded bool
}

// Field returns the value stored under key when Value is a JSON object, nil otherwise.
func (r JSONResult) Field(key string) any {
	obj, ok := r.Value.(map[string]any)
	if !ok {
		return nil
	}
	return obj[key]
}
