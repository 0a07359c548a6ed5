package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/shotlink/shotlink/pkg/errors"
)

// Load assembles the effective configuration from three layers, each
// overriding the previous one:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user configuration file, when it exists
//  3. SHOTLINK_* environment variables
//
// configFile may be empty, in which case only defaults and environment
// variables apply. List values from the environment are comma-separated,
// e.g. SHOTLINK_SYNC_PRIORITY="NEF,TIF,JPG".
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// 2. Load user config file if it exists
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), parserFor(configFile)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load configuration from %s", configFile)
			}
		}
	}

	// 3. Load env vars
	if err := k.Load(env.Provider("SHOTLINK_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SHOTLINK_")), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 5. Post-process
	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// parserFor picks the koanf parser by file extension. TOML is the
// native format; YAML files are accepted too.
func parserFor(configFile string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// postProcessConfig cleans up list values and validates the parts of the
// configuration the rest of the program cannot work without.
func postProcessConfig(cfg *Config) error {
	cfg.Sync.Priority = cleanList(cfg.Sync.Priority)
	if len(cfg.Sync.Priority) == 0 {
		return errors.New(errors.ErrConfigParse, "sync.priority must list at least one extension")
	}

	cfg.Sync.Reserved = cleanList(cfg.Sync.Reserved)
	cfg.Sync.Sidecar.Sources = cleanList(cfg.Sync.Sidecar.Sources)
	cfg.Sync.Sidecar.Extension = strings.TrimSpace(cfg.Sync.Sidecar.Extension)

	return nil
}

// cleanList trims whitespace from each entry and drops empty ones.
func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}
