package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"campaignclient/domain"
	"campaignclient/helpers"
	"campaignclient/interfaces"
	"campaignclient/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routeTransport answers 200 with routes[path], 404 for unknown paths.
func routeTransport(routes map[string]string) *mock.TransportMock {
	return &mock.TransportMock{
		DoFunc: func(ctx context.Context, req domain.TransportRequest) (domain.TransportResponse, error) {
			body, ok := routes[req.Path]
			if !ok {
				return domain.TransportResponse{StatusCode: http.StatusNotFound, Body: "not found"}, nil
			}
			return domain.TransportResponse{StatusCode: http.StatusOK, Body: body}, nil
		},
	}
}

func named(name string) interfaces.IdentityProvider {
	return &mock.IdentityProviderMock{DisplayNameFunc: func() string { return name }}
}

func newTestClient(t *testing.T, cfg domain.ClientConfig, transport interfaces.Transport, identity interfaces.IdentityProvider, logger log.Logger) interfaces.CampaignClient {
	t.Helper()
	client, err := NewCampaignClientFromConfig(cfg, transport, identity, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewCampaignClient_Panics(t *testing.T) {
	resolver := &mock.AddressResolverMock{}
	dispatcher := &mock.DispatcherMock{}
	envelopes := &mock.EnvelopeBuilderMock{}
	pool := &mock.WorkerPoolMock{}
	logger := log.NewNopLogger()

	tests := []struct {
		name string
		want string
		fn   func()
	}{
		{"resolver_nil", "service.campaign_client.go: resolver is required", func() {
			NewCampaignClient(nil, dispatcher, envelopes, nil, pool, "http://x", logger)
		}},
		{"dispatcher_nil", "service.campaign_client.go: dispatcher is required", func() {
			NewCampaignClient(resolver, nil, envelopes, nil, pool, "http://x", logger)
		}},
		{"envelopes_nil", "service.campaign_client.go: envelopes is required", func() {
			NewCampaignClient(resolver, dispatcher, nil, nil, pool, "http://x", logger)
		}},
		{"pool_nil", "service.campaign_client.go: pool is required", func() {
			NewCampaignClient(resolver, dispatcher, envelopes, nil, nil, "http://x", logger)
		}},
		{"server_url_empty", "service.campaign_client.go: serverURL is required", func() {
			NewCampaignClient(resolver, dispatcher, envelopes, nil, pool, "", logger)
		}},
		{"logger_nil", "service.campaign_client.go: logger is required", func() {
			NewCampaignClient(resolver, dispatcher, envelopes, nil, pool, "http://x", nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, tt.want, tt.fn)
		})
	}
}

func TestNewCampaignClientFromConfig_InvalidConfig(t *testing.T) {
	client, err := NewCampaignClientFromConfig(domain.HostPortConfig("", 9000), &mock.TransportMock{}, nil, log.NewNopLogger())
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "host is required")
}

func TestCampaignClient_GetShips(t *testing.T) {
	transport := routeTransport(map[string]string{
		"/ships_available/Atlantis": `{"ships":["Atlantis"]}`,
	})
	client := newTestClient(t, domain.HostPortConfig("camp.example", 9000), transport, named("Atlantis"), log.NewNopLogger())

	assert.Equal(t, []string{"Atlantis"}, client.GetShips())
	require.Len(t, transport.DoCalls(), 1)
	assert.Equal(t, domain.MethodGet, transport.DoCalls()[0].Req.Method)
}

func TestCampaignClient_GetScenarioInfo_EndToEnd(t *testing.T) {
	transport := routeTransport(map[string]string{
		"/scenario_info/alpha/Tutorial%2001": `{"scenarioInfo":{"difficulty":"easy"}}`,
	})
	client := newTestClient(t, domain.HostPortInstanceConfig("camp.example", 9000, "alpha"), transport, named("Atlantis"), log.NewNopLogger())

	assert.Equal(t, map[string]string{"difficulty": "easy"}, client.GetScenarioInfo("Tutorial 01"))

	require.Len(t, transport.DoCalls(), 1)
	req := transport.DoCalls()[0].Req
	assert.Equal(t, "camp.example", req.Host)
	assert.Equal(t, 9000, req.Port)
	assert.Equal(t, "/scenario_info/alpha/Tutorial%2001", req.Path)
}

func TestCampaignClient_Queries(t *testing.T) {
	transport := routeTransport(map[string]string{
		"/scenarios/Crew%20One":                `{"scenarios":["Tutorial 01","Battle"]}`,
		"/scenario_settings/Crew%20One/Battle": `{"difficulty":["easy","hard"],"time":["10","20"]}`,
		"/campaign/Crew%20One/Main":            `{"progress":3,"ships":["Atlantis"]}`,
		"/briefing/Crew%20One":                 "Defend the station.",
	})
	client := newTestClient(t, domain.HostPortConfig("camp.example", 9000), transport, named("Crew One"), log.NewNopLogger())

	assert.Equal(t, []string{"Tutorial 01", "Battle"}, client.GetScenarios())
	assert.Equal(t, map[string][]string{"difficulty": {"easy", "hard"}, "time": {"10", "20"}}, client.GetScenarioSettings("Battle"))
	assert.Equal(t, map[string]any{"progress": float64(3), "ships": []any{"Atlantis"}}, client.GetCampaign("Main"))
	assert.Equal(t, "Defend the station.", client.GetBriefing())
}

func TestCampaignClient_MalformedResponses(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		call    func(c interfaces.CampaignClient) any
		wantErr string
	}{
		{
			name:    "ships_not_array",
			body:    `{"ships":"Atlantis"}`,
			call:    func(c interfaces.CampaignClient) any { return c.GetShips() },
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "ships_missing",
			body:    `{"ship":["Atlantis"]}`,
			call:    func(c interfaces.CampaignClient) any { return c.GetShips() },
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "ships_mixed_types",
			body:    `{"ships":["Atlantis",7]}`,
			call:    func(c interfaces.CampaignClient) any { return c.GetShips() },
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "scenario_info_non_string_value",
			body:    `{"scenarioInfo":{"difficulty":3}}`,
			call:    func(c interfaces.CampaignClient) any { return c.GetScenarioInfo("x") },
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "ships_null_element",
			body:    `{"ships":["Atlantis",null]}`,
			call:    func(c interfaces.CampaignClient) any { return c.GetShips() },
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "scenario_info_null_value",
			body:    `{"scenarioInfo":{"difficulty":null}}`,
			call:    func(c interfaces.CampaignClient) any { return c.GetScenarioInfo("x") },
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "scenario_settings_null_option",
			body:    `{"difficulty":["easy",null]}`,
			call:    func(c interfaces.CampaignClient) any { return c.GetScenarioSettings("x") },
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "scenario_settings_array",
			body:    `["easy"]`,
			call:    func(c interfaces.CampaignClient) any { return c.GetScenarioSettings("x") },
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "invalid_json",
			body:    `{"ships":`,
			call:    func(c interfaces.CampaignClient) any { return c.GetShips() },
			wantErr: ErrJSONParseFailure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := helpers.NewRecordingLogger()
			transport := &mock.TransportMock{
				DoFunc: func(ctx context.Context, req domain.TransportRequest) (domain.TransportResponse, error) {
					return domain.TransportResponse{StatusCode: http.StatusOK, Body: tt.body}, nil
				},
			}
			client := newTestClient(t, domain.HostPortConfig("camp.example", 9000), transport, named("Atlantis"), logger)

			assert.Empty(t, tt.call(client))

			errs := logger.AtLevel("error")
			require.Len(t, errs, 1)
			assert.True(t, strings.HasPrefix(errs[0]["err"], tt.wantErr), errs[0]["err"])
		})
	}
}

func TestCampaignClient_CampaignKeepsNulls(t *testing.T) {
	logger := helpers.NewRecordingLogger()
	transport := routeTransport(map[string]string{
		"/campaign/Atlantis/Main": `{"progress":null,"ships":["Atlantis",null]}`,
	})
	client := newTestClient(t, domain.HostPortConfig("camp.example", 9000), transport, named("Atlantis"), logger)

	assert.Equal(t, map[string]any{"progress": nil, "ships": []any{"Atlantis", nil}}, client.GetCampaign("Main"))
	assert.Empty(t, logger.AtLevel("error"))
}

func TestCampaignClient_FailedQueryReturnsEmpty(t *testing.T) {
	logger := helpers.NewRecordingLogger()
	client := newTestClient(t, domain.HostPortConfig("camp.example", 9000), routeTransport(nil), named("Atlantis"), logger)

	assert.Nil(t, client.GetShips())
	assert.Nil(t, client.GetScenarioInfo("x"))
	assert.Equal(t, "", client.GetBriefing())
	assert.Len(t, logger.AtLevel("warn"), 3)
	assert.Len(t, logger.AtLevel("error"), 2)
}

func TestCampaignClient_IdentityFallback(t *testing.T) {
	tests := []struct {
		name     string
		identity interfaces.IdentityProvider
		wantPath string
	}{
		{"nil_identity", nil, "/ships_available/unknown"},
		{"empty_name", named(""), "/ships_available/unknown"},
		{"named", named("Red Fox"), "/ships_available/Red%20Fox"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := routeTransport(nil)
			client := newTestClient(t, domain.HostPortConfig("camp.example", 9000), transport, tt.identity, log.NewNopLogger())

			client.GetShips()

			require.Len(t, transport.DoCalls(), 1)
			assert.Equal(t, tt.wantPath, transport.DoCalls()[0].Req.Path)
		})
	}
}

func TestCampaignClient_IsOnline(t *testing.T) {
	tests := []struct {
		name   string
		routes map[string]string
		want   bool
	}{
		{"greeting", map[string]string{"/": `{"message":"Hello Space"}`}, true},
		{"other_message", map[string]string{"/": `{"message":"Hello World"}`}, false},
		{"not_json", map[string]string{"/": `Hello Space`}, false},
		{"unreachable", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := helpers.NewRecordingLogger()
			client := newTestClient(t, domain.HostPortConfig("camp.example", 9000), routeTransport(tt.routes), nil, logger)

			assert.Equal(t, tt.want, client.IsOnline())
			if tt.want {
				assert.Empty(t, logger.AtLevel("warn"))
			} else {
				assert.NotEmpty(t, logger.AtLevel("warn"))
			}
		})
	}
}

func TestCampaignClient_NotifyReturnsBeforeDelivery(t *testing.T) {
	release := make(chan struct{})
	arrived := make(chan domain.TransportRequest, 1)
	transport := &mock.TransportMock{
		DoFunc: func(ctx context.Context, req domain.TransportRequest) (domain.TransportResponse, error) {
			<-release
			arrived <- req
			return domain.TransportResponse{StatusCode: http.StatusOK}, nil
		},
	}
	client, err := NewCampaignClientFromConfig(domain.HostPortConfig("camp.example", 9000), transport, named("Atlantis"), log.NewNopLogger())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		client.NotifyCampaignServer("scenario_start", map[string]any{"scenario": "Tutorial 01"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification blocked on the transport")
	}

	close(release)
	var req domain.TransportRequest
	select {
	case req = <-arrived:
	case <-time.After(2 * time.Second):
		t.Fatal("notification never reached the transport")
	}
	require.NoError(t, client.Close())

	assert.Equal(t, domain.MethodPost, req.Method)
	assert.Equal(t, "/scenario_start", req.Path)
	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, map[string]any{
		"scenario": "Tutorial 01",
		"server":   map[string]any{"instance_name": "", "crew_name": "Atlantis"},
	}, body)
}

func TestCampaignClient_NotifyFlatEnvelope(t *testing.T) {
	transport := routeTransport(map[string]string{"/scenario_end": ""})
	cfg := domain.HostPortConfig("camp.example", 9000)
	cfg.Envelope = domain.EnvelopeFlat
	client, err := NewCampaignClientFromConfig(cfg, transport, named("Red Fox"), log.NewNopLogger())
	require.NoError(t, err)

	client.NotifyCampaignServer("scenario_end", map[string]any{"victory": true})
	require.NoError(t, client.Close())

	require.Len(t, transport.DoCalls(), 1)
	var body map[string]any
	require.NoError(t, json.Unmarshal(transport.DoCalls()[0].Req.Body, &body))
	assert.Equal(t, map[string]any{
		"scenario_info": map[string]any{"victory": true},
		"server_name":   "Red%20Fox",
	}, body)
}

func TestCampaignClient_NotifyEmptyEventDropped(t *testing.T) {
	logger := helpers.NewRecordingLogger()
	transport := routeTransport(nil)
	client, err := NewCampaignClientFromConfig(domain.HostPortConfig("camp.example", 9000), transport, nil, logger)
	require.NoError(t, err)

	client.NotifyCampaignServer("", map[string]any{"a": 1})
	require.NoError(t, client.Close())

	assert.Empty(t, transport.DoCalls())
	assert.Len(t, logger.AtLevel("warn"), 1)
}

func TestCampaignClient_NotifyScreen(t *testing.T) {
	transport := routeTransport(map[string]string{"/screen": ""})
	client, err := NewCampaignClientFromConfig(domain.HostPortInstanceConfig("camp.example", 9000, "alpha"), transport, named("Atlantis"), log.NewNopLogger())
	require.NoError(t, err)

	client.NotifyScreen("ship_selection")
	require.NoError(t, client.Close())

	require.Len(t, transport.DoCalls(), 1)
	req := transport.DoCalls()[0].Req
	assert.Equal(t, "/screen", req.Path)
	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "ship_selection", body["screen"])
	assert.Equal(t, map[string]any{"instance_name": "alpha", "crew_name": "Atlantis"}, body["server"])
}

func TestCampaignClient_ProxyCommands(t *testing.T) {
	transport := routeTransport(map[string]string{"/proxySpawn": "", "/proxyDestroy": ""})
	client, err := NewCampaignClientFromConfig(domain.HostPortConfig("camp.example", 9000), transport, nil, log.NewNopLogger())
	require.NoError(t, err)

	client.SpawnShipOnProxy(domain.ShipSpawn{
		ServerIP: "10.0.0.5",
		Callsign: "Atlantis",
		Template: "Atlantis",
		Drive:    "warp",
		Password: "secret",
		X:        100,
		Y:        -200,
		Rotation: 90,
	})
	client.DestroyShipOnProxy("10.0.0.5", "Atlantis")
	require.NoError(t, client.Close())

	bodies := map[string]map[string]any{}
	for _, call := range transport.DoCalls() {
		var body map[string]any
		require.NoError(t, json.Unmarshal(call.Req.Body, &body))
		bodies[call.Req.Path] = body
	}
	assert.Equal(t, map[string]any{
		"server_ip": "10.0.0.5",
		"callsign":  "Atlantis",
		"template":  "Atlantis",
		"drive":     "warp",
		"password":  "secret",
		"x":         float64(100),
		"y":         float64(-200),
		"rota":      float64(90),
	}, bodies["/proxySpawn"])
	assert.Equal(t, map[string]any{"server_ip": "10.0.0.5", "callsign": "Atlantis"}, bodies["/proxyDestroy"])
}

func TestCampaignClient_LegacyURL(t *testing.T) {
	transport := routeTransport(map[string]string{"/base/ships_available/Atlantis": `{"ships":["Atlantis"]}`})
	client := newTestClient(t, domain.LegacyURLConfig("http://camp.example:8080/base/"), transport, named("Atlantis"), log.NewNopLogger())

	assert.Equal(t, []string{"Atlantis"}, client.GetShips())
	assert.Equal(t, "http://camp.example:8080/base/", client.CampaignServerURL())
}

func TestCampaignClient_MalformedLegacyURLNeverCallsTransport(t *testing.T) {
	logger := helpers.NewRecordingLogger()
	transport := routeTransport(nil)
	client := newTestClient(t, domain.LegacyURLConfig("https://camp.example/"), transport, nil, logger)

	assert.Nil(t, client.GetShips())
	assert.False(t, client.IsOnline())
	assert.Empty(t, transport.DoCalls())
}

func TestCampaignClient_CampaignServerURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.ClientConfig
		want string
	}{
		{"host_port", domain.HostPortConfig("camp.example", 9000), "http://camp.example:9000"},
		{"host_port_instance", domain.HostPortInstanceConfig("camp.example", 9000, "alpha"), "http://camp.example:9000"},
		{"ipv6", domain.HostPortConfig("::1", 9000), "http://[::1]:9000"},
		{"legacy", domain.LegacyURLConfig("camp.example/"), "camp.example/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.cfg, &mock.TransportMock{}, nil, log.NewNopLogger())
			assert.Equal(t, tt.want, client.CampaignServerURL())
		})
	}
}

func TestCampaignClient_CloseIsIdempotent(t *testing.T) {
	client, err := NewCampaignClientFromConfig(domain.HostPortConfig("camp.example", 9000), &mock.TransportMock{}, nil, log.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
}
