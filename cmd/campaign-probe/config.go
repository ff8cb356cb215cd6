package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"campaignclient/adapters"
	"campaignclient/domain"

	"gopkg.in/yaml.v3"
)

const envConfigPath = "CAMPAIGN_CONFIG_PATH"

// Config is the probe configuration: how to reach the campaign server and who the probe claims to be.
type Config struct {
	Client       domain.ClientConfig
	IdentityRole string
	IdentityName string
}

type yamlConfig struct {
	Campaign yamlCampaign `yaml:"campaign"`
	Identity yamlIdentity `yaml:"identity"`
}

// yamlCampaign holds either url (legacy base URL) or host/port with an optional instance_name.
type yamlCampaign struct {
	URL              string `yaml:"url"`
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	InstanceName     string `yaml:"instance_name"`
	Envelope         string `yaml:"envelope"`
	RequestTimeoutMs int    `yaml:"request_timeout_ms"`
	Workers          int    `yaml:"workers"`
	QueueSize        int    `yaml:"queue_size"`
}

type yamlIdentity struct {
	Role string `yaml:"role"`
	Name string `yaml:"name"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig reads the YAML file named by CAMPAIGN_CONFIG_PATH (relative paths are resolved against the working
// directory). The address mode follows from the keys present: url selects legacy_url, host selects host_port, and
// host with instance_name selects host_port_instance. Port defaults to 80.
//
// Returns: (*Config, nil) on success; (nil, error) when the path is missing, the file is unreadable, both or
// neither of url and host are set, the identity role is unknown or domain.ClientConfig.Validate fails.
//
// Called only from main.
func LoadConfig() (*Config, error) {
	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return nil, err
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	campaign := raw.Campaign
	url := strings.TrimSpace(campaign.URL)
	host := strings.TrimSpace(campaign.Host)
	var client domain.ClientConfig
	switch {
	case url != "" && host != "":
		return nil, fmt.Errorf("campaign.url and campaign.host are mutually exclusive")
	case url != "":
		client = domain.LegacyURLConfig(url)
	case host != "":
		port := campaign.Port
		if port == 0 {
			port = domain.DefaultHTTPPort
		}
		if instance := strings.TrimSpace(campaign.InstanceName); instance != "" {
			client = domain.HostPortInstanceConfig(host, port, instance)
		} else {
			client = domain.HostPortConfig(host, port)
		}
	default:
		return nil, fmt.Errorf("campaign.url or campaign.host is required")
	}
	if campaign.RequestTimeoutMs < 0 {
		return nil, fmt.Errorf("campaign.request_timeout_ms must not be negative")
	}
	client.Envelope = domain.EnvelopeShape(strings.TrimSpace(campaign.Envelope))
	client.RequestTimeout = time.Duration(campaign.RequestTimeoutMs) * time.Millisecond
	client.Workers = campaign.Workers
	client.QueueSize = campaign.QueueSize
	if err := client.Validate(); err != nil {
		return nil, err
	}

	role := strings.TrimSpace(raw.Identity.Role)
	switch role {
	case "":
		role = adapters.RoleNone
	case adapters.RoleServer, adapters.RoleProxy, adapters.RoleNone:
	default:
		return nil, fmt.Errorf("identity.role must be server|proxy|none, got %q", role)
	}
	name := strings.TrimSpace(raw.Identity.Name)
	if role != adapters.RoleNone && name == "" {
		return nil, fmt.Errorf("identity.name is required for role %s", role)
	}

	return &Config{
		Client:       client.WithDefaults(),
		IdentityRole: role,
		IdentityName: name,
	}, nil
}
