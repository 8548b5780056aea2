package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryCompiles(t *testing.T) {
	assert.NotPanics(t, func() { DefaultRegistry() })
}

func TestLoadRegistry(t *testing.T) {
	valid := `{
	  "manufacturer_patterns": ["Acme\\s*Plastics"],
	  "intermediary_pattern": "Arrow\\s*Trading\\s*LLC",
	  "forwarder_patterns": {
	    "laredo": "Medina\\s*Logistic\\s*Services",
	    "eagle_pass": "Villarreal",
	    "bdp": "BDP\\s*International"
	  },
	  "addresses": {
	    "laredo": "14402 Investment Ave.\nLaredo, TX 78045"
	  }
	}`

	t.Run("valid override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "registry.json")
		require.NoError(t, os.WriteFile(path, []byte(valid), 0o644))

		reg, err := LoadRegistry(path)
		require.NoError(t, err)
		assert.True(t, reg.manufacturer.MatchString("Acme Plastics"))
		assert.Equal(t, "14402 Investment Ave.\nLaredo, TX 78045", reg.Address(RouteLaredo))
		// omitted sections keep the built-in corrections
		assert.NotEmpty(t, reg.corrections)
	})

	t.Run("schema violation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "registry.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"manufacturer_patterns": []}`), 0o644))

		_, err := LoadRegistry(path)
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "registry.json")
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

		_, err := LoadRegistry(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}
