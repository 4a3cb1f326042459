package app

import (
	"net/http"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"datakeep/internal/assets"
	"datakeep/internal/crypto"
	"datakeep/internal/domain"
	"datakeep/internal/paths"
	"datakeep/internal/store"
)

var logger = loggo.GetLogger("datakeep.app")

// Wire bundles the resolver, codec and store for the CLI.
type Wire struct {
	Config Config
	Paths  *paths.Resolver
	Codec  domain.Codec
	Store  *store.Store
	HTTP   *http.Client

	// ConfigureErr records a failure to prepare the writable root. It is not
	// fatal; saves and loads against that root fail individually.
	ConfigureErr error
}

// NewWire constructs the dependency graph from cfg. An optional client is
// used for bundled fetches; nil means http.DefaultClient.
func NewWire(cfg Config, client *http.Client) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	if client == nil {
		client = http.DefaultClient
	}

	resolver := paths.New(paths.Options{DataRoot: cfg.DataRoot, BundledRoot: cfg.BundledRoot})
	var configureErr error
	if err := resolver.Configure(cfg.Subfolder); err != nil {
		configureErr = &store.Error{Kind: store.PathError, Op: "configure", Root: domain.WritableData, Path: resolver.Writable(), Err: err}
		logger.Warningf("%v", configureErr)
	}

	codec, err := crypto.NewCodec(cfg.Cipher, cfg.Secret)
	if err != nil {
		return nil, errors.Trace(err)
	}

	var bundled domain.AssetReader = assets.FileReader{}
	if cfg.BundledMode == BundledFetch {
		timeout, err := cfg.fetchTimeout()
		if err != nil {
			return nil, errors.Trace(err)
		}
		bundled = assets.NewFetchReader(client, timeout)
	}

	st, err := store.New(store.Options{
		Locator:            resolver,
		Codec:              codec,
		Serializer:         store.JSONSerializer{Strict: cfg.StrictJSON},
		Bundled:            bundled,
		AllowBundledWrites: cfg.AllowBundledWrites && cfg.BundledMode == BundledFile,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &Wire{
		Config:       cfg,
		Paths:        resolver,
		Codec:        codec,
		Store:        st,
		HTTP:         client,
		ConfigureErr: configureErr,
	}, nil
}
