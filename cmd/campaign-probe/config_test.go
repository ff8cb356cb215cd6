package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"campaignclient/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_MissingConfigPath(t *testing.T) {
	t.Setenv(envConfigPath, "")
	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "CAMPAIGN_CONFIG_PATH is required")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestLoadConfig_Modes(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want domain.ClientConfig
	}{
		{
			name: "legacy_url",
			yaml: "campaign:\n  url: http://camp.example:8080/base/\n",
			want: domain.ClientConfig{
				Mode: domain.AddressModeLegacyURL, BaseURL: "http://camp.example:8080/base/",
				Envelope: domain.EnvelopeNested, Workers: domain.DefaultWorkers, QueueSize: domain.DefaultQueueSize,
			},
		},
		{
			name: "host_port_default_port",
			yaml: "campaign:\n  host: camp.example\n  envelope: flat\n",
			want: domain.ClientConfig{
				Mode: domain.AddressModeHostPort, Host: "camp.example", Port: 80,
				Envelope: domain.EnvelopeFlat, Workers: domain.DefaultWorkers, QueueSize: domain.DefaultQueueSize,
			},
		},
		{
			name: "host_port_instance",
			yaml: "campaign:\n  host: camp.example\n  port: 9000\n  instance_name: alpha\n  request_timeout_ms: 2500\n  workers: 2\n  queue_size: 8\n",
			want: domain.ClientConfig{
				Mode: domain.AddressModeHostPortInstance, Host: "camp.example", Port: 9000, InstanceName: "alpha",
				Envelope: domain.EnvelopeNested, RequestTimeout: 2500 * time.Millisecond, Workers: 2, QueueSize: 8,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envConfigPath, writeConfig(t, tt.yaml))
			cfg, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Client)
			assert.Equal(t, "none", cfg.IdentityRole)
		})
	}
}

func TestLoadConfig_Identity(t *testing.T) {
	t.Setenv(envConfigPath, writeConfig(t, "campaign:\n  host: camp.example\nidentity:\n  role: proxy\n  name: Relay 1\n"))
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "proxy", cfg.IdentityRole)
	assert.Equal(t, "Relay 1", cfg.IdentityName)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"no_address", "campaign: {}\n", "campaign.url or campaign.host is required"},
		{"both_addresses", "campaign:\n  url: http://a/\n  host: a\n", "mutually exclusive"},
		{"bad_port", "campaign:\n  host: a\n  port: 70000\n", "port must be 1-65535"},
		{"bad_envelope", "campaign:\n  host: a\n  envelope: xml\n", "envelope must be flat|nested"},
		{"negative_timeout", "campaign:\n  host: a\n  request_timeout_ms: -1\n", "must not be negative"},
		{"bad_role", "campaign:\n  host: a\nidentity:\n  role: pilot\n", "identity.role must be server|proxy|none"},
		{"missing_name", "campaign:\n  host: a\nidentity:\n  role: server\n", "identity.name is required"},
		{"bad_yaml", "campaign: [\n", "load config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envConfigPath, writeConfig(t, tt.yaml))
			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
