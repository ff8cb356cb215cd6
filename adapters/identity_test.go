package adapters

import (
	"testing"

	"campaignclient/domain"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.identity.go: server name func is required", func() {
		ServerIdentity(nil)
	})
	assert.PanicsWithValue(t, "adapters.identity.go: proxy name func is required", func() {
		ProxyIdentity(nil)
	})
}

func TestIdentity_ResolvedOnEveryCall(t *testing.T) {
	name := "Atlantis"
	server := ServerIdentity(func() string { return name })
	assert.Equal(t, "Atlantis", server.DisplayName())

	name = "Odyssey"
	assert.Equal(t, "Odyssey", server.DisplayName())
}

func TestIdentityFor(t *testing.T) {
	tests := []struct {
		role string
		name string
		want string
	}{
		{RoleServer, "Atlantis", "Atlantis"},
		{RoleProxy, "Relay 1", "Relay 1"},
		{RoleNone, "ignored", domain.UnknownIdentity},
		{"", "ignored", domain.UnknownIdentity},
		{"pilot", "ignored", domain.UnknownIdentity},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentityFor(tt.role, tt.name).DisplayName())
		})
	}
}
