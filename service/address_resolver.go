package service

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"campaignclient/domain"
	"campaignclient/helpers"
	"campaignclient/interfaces"
)

const legacyScheme = "http://"

// addressResolver implements interfaces.AddressResolver for every domain.AddressMode. Structured modes resolve the
// target at construction; legacy_url parses BaseURL once, on the first Target call, and memoises the outcome
// (target or error) under once. instanceNameURL is the instance name encoded once at construction.
type addressResolver struct {
	cfg             domain.ClientConfig
	instanceNameURL string

	once      sync.Once
	target    domain.Target
	targetErr error
}

// NewAddressResolver creates the resolver for cfg. cfg must have passed domain.ClientConfig.Validate.
//
// Parameter cfg - immutable client config; only Mode, BaseURL, Host, Port and InstanceName are read.
//
// Returns: interfaces.AddressResolver (*addressResolver).
//
// Called from NewCampaignClientFromConfig and cmd/campaign-probe.
func NewAddressResolver(cfg domain.ClientConfig) interfaces.AddressResolver {
	r := &addressResolver{cfg: cfg}
	if cfg.InstanceName != "" {
		r.instanceNameURL = helpers.URLEncode(cfg.InstanceName)
	}
	if cfg.Mode != domain.AddressModeLegacyURL {
		r.once.Do(func() {
			r.target = domain.Target{Host: cfg.Host, Port: cfg.Port}
		})
	}
	return r
}

// Target returns the resolved campaign server address; for legacy_url the base URL is parsed on the first call.
//
// Returns: (target, nil) or (zero, malformed_url CampaignError), identical on every call.
//
// Called from dispatcher.Send before every request.
func (r *addressResolver) Target() (domain.Target, error) {
	r.once.Do(func() {
		r.target, r.targetErr = parseLegacyURL(r.cfg.BaseURL)
	})
	return r.target, r.targetErr
}

// Path builds "/" + endpoint + "/" + URLEncode(segment)... Endpoint names are logical and used verbatim.
func (r *addressResolver) Path(endpoint string, segments ...string) string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(endpoint)
	writeSegments(&b, segments)
	return b.String()
}

// ScopedPath builds the path of a query scoped to this server: the scope segment is instanceNameURL verbatim when
// an instance name is configured, otherwise URLEncode(identity).
func (r *addressResolver) ScopedPath(endpoint, identity string, segments ...string) string {
	scope := r.instanceNameURL
	if scope == "" {
		scope = helpers.URLEncode(identity)
	}
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(endpoint)
	b.WriteString("/")
	b.WriteString(scope)
	writeSegments(&b, segments)
	return b.String()
}

func writeSegments(b *strings.Builder, segments []string) {
	for _, segment := range segments {
		b.WriteString("/")
		b.WriteString(helpers.URLEncode(segment))
	}
}

// InstanceName returns the raw instance name ("" when not configured).
func (r *addressResolver) InstanceName() string {
	return r.cfg.InstanceName
}

// parseLegacyURL decomposes a legacy base URL: optional "http://" prefix, host-part up to the first "/", optional
// ":port" (default 80, also when the port after ":" is empty). A bracketed IPv6 host is stored without brackets. The
// URI-part without trailing "/" becomes Target.BasePath.
//
// Parameter baseURL - e.g. "http://host:8080/base", "host/".
//
// Returns: (target, nil); (zero, malformed_url) when there is no "/" after the host, the host is empty, an IPv6
// bracket is unterminated or the port is not a number in 1-65535.
//
// Called only from addressResolver.Target (once).
func parseLegacyURL(baseURL string) (domain.Target, error) {
	rest := strings.TrimPrefix(strings.TrimSpace(baseURL), legacyScheme)
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return domain.Target{}, NewMalformedURLError(fmt.Sprintf("no path separator after host in %q", baseURL), nil)
	}
	hostPart, uriPart := rest[:slash], rest[slash:]
	host, portPart := hostPart, ""
	if strings.HasPrefix(hostPart, "[") {
		end := strings.Index(hostPart, "]")
		if end < 0 || (end+1 < len(hostPart) && hostPart[end+1] != ':') {
			return domain.Target{}, NewMalformedURLError(fmt.Sprintf("invalid IPv6 host in %q", baseURL), nil)
		}
		host, portPart = hostPart[1:end], strings.TrimPrefix(hostPart[end+1:], ":")
	} else if i := strings.LastIndex(hostPart, ":"); i >= 0 {
		host, portPart = hostPart[:i], hostPart[i+1:]
	}
	port := domain.DefaultHTTPPort
	if portPart != "" {
		p, err := strconv.Atoi(portPart)
		if err != nil || p <= 0 || p > 65535 {
			return domain.Target{}, NewMalformedURLError(fmt.Sprintf("invalid port in %q", baseURL), err)
		}
		port = p
	}
	if host == "" {
		return domain.Target{}, NewMalformedURLError(fmt.Sprintf("empty host in %q", baseURL), nil)
	}
	return domain.Target{
		Host:     host,
		Port:     port,
		BasePath: strings.TrimRight(uriPart, "/"),
	}, nil
}

// targetAddress renders target as host:port + base path for logs and CampaignServerURL.
func targetAddress(target domain.Target) string {
	return net.JoinHostPort(target.Host, strconv.Itoa(target.Port)) + target.BasePath
}
