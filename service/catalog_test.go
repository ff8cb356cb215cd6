package service

import (
	"os"
	"path/filepath"
	"testing"

	"campaignclient/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `
scenarios: ["Tutorial 01", "Battle"]
scenario_info:
  Tutorial 01:
    difficulty: easy
scenario_settings:
  Battle:
    time: ["10", "20"]
ships: [Atlantis]
campaigns:
  Main:
    progress: 3
briefing: Defend the station.
`

func TestParseCatalog(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		catalog, err := ParseCatalog([]byte(testCatalogYAML))
		require.NoError(t, err)
		assert.Equal(t, []string{"Tutorial 01", "Battle"}, catalog.Scenarios)
		assert.Equal(t, "easy", catalog.ScenarioInfo["Tutorial 01"]["difficulty"])
		assert.Equal(t, []string{"10", "20"}, catalog.ScenarioSettings["Battle"]["time"])
		assert.Equal(t, []string{"Atlantis"}, catalog.Ships)
		assert.Equal(t, 3, catalog.Campaigns["Main"]["progress"])
		assert.Equal(t, "Defend the station.", catalog.Briefing)
	})

	t.Run("empty", func(t *testing.T) {
		catalog, err := ParseCatalog(nil)
		require.NoError(t, err)
		assert.Equal(t, domain.Catalog{}, catalog)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParseCatalog([]byte("shipz: [Atlantis]\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse catalog")
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := ParseCatalog([]byte("ships: Atlantis: x\n"))
		require.Error(t, err)
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testCatalogYAML), 0o600))

		catalog, err := LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Atlantis"}, catalog.Ships)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})
}

func TestNewStaticCatalog_DefaultGreeting(t *testing.T) {
	assert.Equal(t, domain.Greeting, NewStaticCatalog(domain.Catalog{}).Catalog().Greeting)
	assert.Equal(t, "Hi", NewStaticCatalog(domain.Catalog{Greeting: "Hi"}).Catalog().Greeting)
}
