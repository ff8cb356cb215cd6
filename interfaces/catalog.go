package interfaces

import "campaignclient/domain"

// CatalogSource provides the campaign data the stub server answers queries from.
//
// Implemented by service.staticCatalog (YAML-loaded, immutable). Called from handlers.HTTPServer.
//
//go:generate moq -stub -out mock/catalog_source.go -pkg mock . CatalogSource
type CatalogSource interface {
	// Catalog returns the current catalog. The returned value must be treated as read-only.
	Catalog() domain.Catalog
}
