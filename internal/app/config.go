package app

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	jujuerrors "github.com/juju/errors"
	"github.com/pelletier/go-toml/v2"

	"datakeep/internal/assets"
	"datakeep/internal/crypto"
)

// DefaultSecret is the secret records were encrypted with before it became
// configurable. Override it with DATAKEEP_SECRET or the config file.
const DefaultSecret = "124578963"

// Bundled root modes.
const (
	BundledFile  = "file"
	BundledFetch = "fetch"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Subfolder          string `toml:"subfolder"            env:"DATAKEEP_SUBFOLDER"`
	Secret             string `toml:"secret"               env:"DATAKEEP_SECRET"`
	Cipher             string `toml:"cipher"               env:"DATAKEEP_CIPHER"`               // tripledes | sealed
	DataRoot           string `toml:"data_root"            env:"DATAKEEP_DATA_ROOT"`            // default os.UserConfigDir()
	BundledRoot        string `toml:"bundled_root"         env:"DATAKEEP_BUNDLED_ROOT"`         // directory or http(s) URL
	BundledMode        string `toml:"bundled_mode"         env:"DATAKEEP_BUNDLED_MODE"`         // file | fetch
	FetchTimeout       string `toml:"fetch_timeout"        env:"DATAKEEP_FETCH_TIMEOUT"`        // e.g. "10s"
	AllowBundledWrites bool   `toml:"allow_bundled_writes" env:"DATAKEEP_ALLOW_BUNDLED_WRITES"` // file mode only
	StrictJSON         bool   `toml:"strict_json"          env:"DATAKEEP_STRICT_JSON"`
	LogLevel           string `toml:"log_level"            env:"DATAKEEP_LOG_LEVEL"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Subfolder:    "datakeep",
		Secret:       DefaultSecret,
		Cipher:       crypto.CodecTripleDES,
		BundledMode:  BundledFile,
		FetchTimeout: assets.DefaultFetchTimeout.String(),
		LogLevel:     "WARNING",
	}
}

// LoadConfig starts from DefaultConfig, applies the TOML file at path (if
// path is non-empty and the file exists), then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, jujuerrors.Annotatef(err, "read config %q", path)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, jujuerrors.Annotatef(err, "parse config %q", path)
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, jujuerrors.Annotate(err, "parse env")
	}
	return cfg, cfg.Validate()
}

// Validate checks that cfg can be wired.
func (c Config) Validate() error {
	if c.Subfolder == "" {
		return jujuerrors.NotValidf("empty subfolder")
	}
	if c.Secret == "" {
		return jujuerrors.NotValidf("empty secret")
	}
	switch c.BundledMode {
	case BundledFile, BundledFetch:
	default:
		return jujuerrors.NotValidf("bundled mode %q", c.BundledMode)
	}
	if c.BundledMode == BundledFetch && c.AllowBundledWrites {
		return jujuerrors.NotValidf("bundled writes with fetch mode")
	}
	if _, err := c.fetchTimeout(); err != nil {
		return err
	}
	switch c.Cipher {
	case "", crypto.CodecTripleDES, crypto.CodecSealed:
	default:
		return jujuerrors.NotValidf("cipher %q", c.Cipher)
	}
	return nil
}

func (c Config) fetchTimeout() (time.Duration, error) {
	if c.FetchTimeout == "" {
		return assets.DefaultFetchTimeout, nil
	}
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil {
		return 0, jujuerrors.NotValidf("fetch timeout %q", c.FetchTimeout)
	}
	return d, nil
}

// Marshal renders cfg as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
