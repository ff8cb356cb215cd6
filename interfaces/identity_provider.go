package interfaces

// IdentityProvider reports the display name of "who is asking": the game server name or the proxy name, depending on
// which role this process runs. The campaign client resolves it at call time and never branches on the role.
//
// Implemented by adapters.ServerIdentity, adapters.ProxyIdentity and adapters.UnknownIdentity.
// Called from service.campaignClient when building scoped paths and notification envelopes.
//
//go:generate moq -stub -out mock/identity_provider.go -pkg mock . IdentityProvider
type IdentityProvider interface {
	// DisplayName returns the current name; an empty string makes the client fall back to domain.UnknownIdentity.
	DisplayName() string
}
