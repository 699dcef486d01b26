package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	sweeperr "github.com/voxelpromo/docsweep/pkg/errors"
	"github.com/voxelpromo/docsweep/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config file names probed in the root directory, in order. The first one
// that exists wins.
var configFileNames = []string{".docsweep.toml", "docsweep.toml", ".docsweep.yaml"}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the effective configuration by layering, lowest priority
// first: embedded defaults, a config file found in rootDir, then
// DOCSWEEP_* environment variables.
func Load(rootDir string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, ktoml.Parser()); err != nil {
		return nil, sweeperr.Wrap(err, sweeperr.ErrConfigLoad, "failed to load built-in defaults")
	}

	// 2. Config file in the root directory, if any
	if rootDir != "" {
		for _, name := range configFileNames {
			path := filepath.Join(rootDir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			parser := parserFor(name)
			if err := k.Load(file.Provider(path), parser); err != nil {
				return nil, sweeperr.Wrapf(err, sweeperr.ErrConfigParse, "failed to parse config file %s", path)
			}
			logger.Debug().Str("path", path).Msg("loaded config file")
			break
		}
	}

	// 3. Environment variables. A set-but-empty variable counts as unset
	// so it cannot mask a value from a lower layer.
	if err := k.Load(env.ProviderWithValue("DOCSWEEP_", ".", envValueMap), nil); err != nil {
		return nil, sweeperr.Wrap(err, sweeperr.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			Squash:           true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, sweeperr.Wrap(err, sweeperr.ErrConfigParse, "failed to decode configuration")
	}

	// The config file may clear on_conflict explicitly; fall back to the default
	if cfg.Archive.OnConflict == "" {
		cfg.Archive.OnConflict = Default().Archive.OnConflict
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envValueMap maps DOCSWEEP_* variables onto config keys. Only recognized
// variables with a non-empty value are mapped; anything else is dropped.
func envValueMap(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	switch strings.ToUpper(key) {
	case "DOCSWEEP_SOURCE_ROOT":
		return "archive.source_root", value
	case "DOCSWEEP_ON_CONFLICT":
		return "archive.on_conflict", value
	}
	return "", nil
}

// parserFor picks the koanf parser matching the config file extension
func parserFor(name string) koanf.Parser {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return ktoml.Parser()
	}
}

func (c *Config) validate() error {
	if !c.ConflictPolicy().Valid() {
		return sweeperr.Newf(sweeperr.ErrConfigValid,
			"invalid on_conflict value %q (want overwrite, skip, or rename)", c.Archive.OnConflict)
	}
	return nil
}
