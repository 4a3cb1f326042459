package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, DefaultSecret, cfg.Secret)
}

func TestLoadConfig_MissingFileIsFine(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, "datakeep", cfg.Subfolder)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "datakeep.toml")
	data := `
subfolder = "mygame"
secret = "from-file"
bundled_root = "/opt/mygame/assets"
fetch_timeout = "3s"
strict_json = true
`
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	t.Setenv("DATAKEEP_SECRET", "from-env")

	cfg, err := LoadConfig(p)

	require.NoError(t, err)
	assert.Equal(t, "mygame", cfg.Subfolder)
	assert.Equal(t, "from-env", cfg.Secret)
	assert.Equal(t, "/opt/mygame/assets", cfg.BundledRoot)
	assert.True(t, cfg.StrictJSON)
	d, err := cfg.fetchTimeout()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)
}

func TestLoadConfig_BadTOML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "datakeep.toml")
	require.NoError(t, os.WriteFile(p, []byte("subfolder = ["), 0o600))

	_, err := LoadConfig(p)

	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty subfolder":     func(c *Config) { c.Subfolder = "" },
		"empty secret":        func(c *Config) { c.Secret = "" },
		"bad mode":            func(c *Config) { c.BundledMode = "zip" },
		"fetch with writes":   func(c *Config) { c.BundledMode = BundledFetch; c.AllowBundledWrites = true },
		"bad timeout":         func(c *Config) { c.FetchTimeout = "soon" },
		"unknown cipher name": func(c *Config) { c.Cipher = "rot13" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BundledRoot = "/assets"

	data, err := cfg.Marshal()
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "datakeep.toml")
	require.NoError(t, os.WriteFile(p, data, 0o600))
	got, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestConfigureLogging(t *testing.T) {
	assert.NoError(t, ConfigureLogging(""))
	assert.NoError(t, ConfigureLogging("DEBUG"))
	assert.Error(t, ConfigureLogging("LOUD"))
	assert.NoError(t, ConfigureLogging("WARNING"))
}
