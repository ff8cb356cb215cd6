package domain

import (
	"fmt"
	"strings"
	"time"
)

// AddressMode selects how the campaign server address is configured.
type AddressMode string

const (
	AddressModeLegacyURL        AddressMode = "legacy_url"
	AddressModeHostPort         AddressMode = "host_port"
	AddressModeHostPortInstance AddressMode = "host_port_instance"
)

// EnvelopeShape selects the wire format of notification bodies.
type EnvelopeShape string

const (
	// EnvelopeFlat wraps the payload: {"scenario_info": payload, "server_name": encoded identity}.
	EnvelopeFlat EnvelopeShape = "flat"
	// EnvelopeNested merges the payload with {"server": {"instance_name": ..., "crew_name": ...}}.
	EnvelopeNested EnvelopeShape = "nested"
)

// ClientConfig is the immutable campaign client configuration. Mode decides which address fields are used:
// BaseURL for legacy_url, Host and Port for host_port, Host, Port and InstanceName for host_port_instance.
type ClientConfig struct {
	Mode         AddressMode
	BaseURL      string
	Host         string
	Port         int
	InstanceName string

	Envelope       EnvelopeShape
	RequestTimeout time.Duration // 0 = transport default; ignored in legacy_url mode
	Workers        int
	QueueSize      int
}

// LegacyURLConfig builds a config that parses baseURL (e.g. "http://host:8080/base") on first use.
func LegacyURLConfig(baseURL string) ClientConfig {
	return ClientConfig{Mode: AddressModeLegacyURL, BaseURL: baseURL}
}

// HostPortConfig builds a config addressing host:port directly.
func HostPortConfig(host string, port int) ClientConfig {
	return ClientConfig{Mode: AddressModeHostPort, Host: host, Port: port}
}

// HostPortInstanceConfig builds a config addressing host:port and scoping every query by instanceName.
func HostPortInstanceConfig(host string, port int, instanceName string) ClientConfig {
	return ClientConfig{Mode: AddressModeHostPortInstance, Host: host, Port: port, InstanceName: instanceName}
}

// WithDefaults fills the envelope shape and worker pool bounds when unset.
func (c ClientConfig) WithDefaults() ClientConfig {
	if c.Envelope == "" {
		c.Envelope = EnvelopeNested
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.QueueSize <= 0 {
		c.QueueSize = DefaultQueueSize
	}
	return c
}

// Timeout returns the per-request timeout: fixed for legacy_url, RequestTimeout otherwise.
func (c ClientConfig) Timeout() time.Duration {
	if c.Mode == AddressModeLegacyURL {
		return LegacyRequestTimeout
	}
	return c.RequestTimeout
}

// Validate checks that the fields required by Mode are present. The legacy base URL itself is only parsed on
// first use, so a malformed URL is not reported here.
func (c ClientConfig) Validate() error {
	switch c.Mode {
	case AddressModeLegacyURL:
		if strings.TrimSpace(c.BaseURL) == "" {
			return fmt.Errorf("base url is required for %s mode", c.Mode)
		}
	case AddressModeHostPort, AddressModeHostPortInstance:
		if strings.TrimSpace(c.Host) == "" {
			return fmt.Errorf("host is required for %s mode", c.Mode)
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("port must be 1-65535, got %d", c.Port)
		}
		if c.Mode == AddressModeHostPortInstance && c.InstanceName == "" {
			return fmt.Errorf("instance name is required for %s mode", c.Mode)
		}
	default:
		return fmt.Errorf("unknown address mode %q", c.Mode)
	}
	switch c.Envelope {
	case "", EnvelopeFlat, EnvelopeNested:
	default:
		return fmt.Errorf("envelope must be flat|nested, got %q", c.Envelope)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}
	return nil
}
