package registrar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CMSgov/pixfeed-app/conf"
	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
	"github.com/CMSgov/pixfeed-app/pixfeed/testUtils"
)

func TestDefault(t *testing.T) {
	r := Default("en")
	assert.Equal(t, "en", r.GetDefaultLanguage())
	assert.Equal(t, "1.0.639.3", r.GetSystemID(constants.ISO639_3))
	assert.Equal(t, "1.0.3166.1", r.GetSystemID(constants.ISO3166_1))
	assert.Empty(t, r.GetSystemID("LOINC"))

	// each registry owns its map
	r.systems[constants.ISO639_3] = "changed"
	assert.Equal(t, "1.0.639.3", Default("en").GetSystemID(constants.ISO639_3))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		errMsg   string
		language string
		iso6393  string
	}{
		{"overrides", "testdata/registry.toml", "", "fr", "2.16.840.1.113883.6.121"},
		{"invalid oid", "testdata/bad_oid.toml", "invalid registry file", "", ""},
		{"missing file", "testdata/missing.toml", "failed to read registry file", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Load(tt.path, "en")
			if tt.errMsg != "" {
				assert.ErrorContains(t, err, tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.language, r.GetDefaultLanguage())
			assert.Equal(t, tt.iso6393, r.GetSystemID(constants.ISO639_3))
			assert.Equal(t, "1.0.639.1", r.GetSystemID(constants.ISO639_1))
			assert.Equal(t, "2.16.840.1.113883.5.14", r.GetSystemID("ActStatus"))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("built-in", func(t *testing.T) {
		require.NoError(t, conf.UnsetEnv(t, "PIXFEED_REGISTRY_FILE"))
		r, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "en", r.GetDefaultLanguage())
	})

	t.Run("from file", func(t *testing.T) {
		require.NoError(t, conf.SetEnv(t, "PIXFEED_REGISTRY_FILE", "testdata/registry.toml"))
		require.NoError(t, conf.SetEnv(t, "PIXFEED_DEFAULT_LANGUAGE", "de"))
		t.Cleanup(func() {
			assert.NoError(t, conf.UnsetEnv(t, "PIXFEED_REGISTRY_FILE"))
			assert.NoError(t, conf.UnsetEnv(t, "PIXFEED_DEFAULT_LANGUAGE"))
		})

		r, err := LoadConfig()
		require.NoError(t, err)
		// the file wins over the environment default
		assert.Equal(t, "fr", r.GetDefaultLanguage())
		assert.Equal(t, "2.16.840.1.113883.6.121", r.GetSystemID(constants.ISO639_3))
	})
}

func TestLoadEditedCopy(t *testing.T) {
	dir := testUtils.CopyToTemporaryDirectory(t, "testdata")
	path := filepath.Join(dir, "registry.toml")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(t, err)
	_, err = f.WriteString("\n[[system]]\nname = \"RoleStatus\"\noid = \"2.16.840.1.113883.5.1068\"\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	r, err := Load(path, "en")
	require.NoError(t, err)
	assert.Equal(t, "2.16.840.1.113883.5.1068", r.GetSystemID("RoleStatus"))
	assert.Equal(t, "2.16.840.1.113883.6.121", r.GetSystemID(constants.ISO639_3))

	// the checked in file is untouched
	r, err = Load("testdata/registry.toml", "en")
	require.NoError(t, err)
	assert.Empty(t, r.GetSystemID("RoleStatus"))
}
