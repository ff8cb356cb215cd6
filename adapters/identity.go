package adapters

import (
	"campaignclient/domain"
	"campaignclient/helpers"
	"campaignclient/interfaces"
)

// Role names accepted by IdentityFor.
const (
	RoleServer = "server"
	RoleProxy  = "proxy"
	RoleNone   = "none"
)

// namedIdentity implements interfaces.IdentityProvider by calling name on every lookup, so a renamed server or
// proxy is picked up by the next request.
type namedIdentity struct {
	role string
	name func() string
}

// ServerIdentity reports the game server name. Panics on nil name.
func ServerIdentity(name func() string) interfaces.IdentityProvider {
	return &namedIdentity{role: RoleServer, name: helpers.NilPanic(name, "adapters.identity.go: server name func is required")}
}

// ProxyIdentity reports the proxy name. Panics on nil name.
func ProxyIdentity(name func() string) interfaces.IdentityProvider {
	return &namedIdentity{role: RoleProxy, name: helpers.NilPanic(name, "adapters.identity.go: proxy name func is required")}
}

// UnknownIdentity is used when the process is neither a server nor a proxy.
func UnknownIdentity() interfaces.IdentityProvider {
	return &namedIdentity{role: RoleNone, name: func() string { return domain.UnknownIdentity }}
}

// IdentityFor maps a configured role and a fixed name to a provider; unknown roles and RoleNone give
// UnknownIdentity.
//
// Called from cmd/campaign-probe.
func IdentityFor(role, name string) interfaces.IdentityProvider {
	fixed := func() string { return name }
	switch role {
	case RoleServer:
		return ServerIdentity(fixed)
	case RoleProxy:
		return ProxyIdentity(fixed)
	default:
		return UnknownIdentity()
	}
}

func (i *namedIdentity) DisplayName() string {
	return i.name()
}
