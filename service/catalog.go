package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"campaignclient/domain"
	"campaignclient/interfaces"

	"gopkg.in/yaml.v3"
)

// staticCatalog implements interfaces.CatalogSource over a catalog fixed at startup.
type staticCatalog struct {
	catalog domain.Catalog
}

// NewStaticCatalog serves catalog as is. An empty greeting is replaced by domain.Greeting so a default stub
// passes the liveness check.
func NewStaticCatalog(catalog domain.Catalog) interfaces.CatalogSource {
	if catalog.Greeting == "" {
		catalog.Greeting = domain.Greeting
	}
	return &staticCatalog{catalog: catalog}
}

func (s *staticCatalog) Catalog() domain.Catalog {
	return s.catalog
}

// LoadCatalog reads and parses the YAML catalog at path.
//
// Returns: (catalog, nil); (zero, error) when the file cannot be read, contains unknown keys or is not valid YAML.
//
// Called from cmd/campaign-stub.
func LoadCatalog(path string) (domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog, rejecting unknown keys. An empty document yields an empty catalog.
func ParseCatalog(data []byte) (domain.Catalog, error) {
	var catalog domain.Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil && !errors.Is(err, io.EOF) {
		return domain.Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return catalog, nil
}
