package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/logging"
)

var log = logging.GetLogger("config")

// FolderConfig holds per-folder overrides from a .shotlink.toml file
// placed inside a shortcut folder. Only the fields it sets override the
// effective configuration; everything else is inherited.
type FolderConfig struct {
	// Priority overrides the extension preference list for this folder.
	Priority []string `toml:"priority"`
}

// LoadFolderConfig reads and parses a folder's .shotlink.toml file.
func LoadFolderConfig(configPath string) (FolderConfig, error) {
	logger := log.With().Str("configPath", configPath).Logger()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return FolderConfig{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", configPath)
	}

	var config FolderConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return FolderConfig{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse TOML in %s", configPath)
	}

	config.Priority = cleanList(config.Priority)

	logger.Debug().
		Int("priority_entries", len(config.Priority)).
		Msg("Folder config loaded")

	return config, nil
}

// ApplyFolderConfig merges a folder override into a copy of the base
// configuration and returns the result. The base is not modified.
func ApplyFolderConfig(base *Config, folder FolderConfig) *Config {
	merged := *base
	if len(folder.Priority) > 0 {
		merged.Sync.Priority = folder.Priority
	}
	return &merged
}

// FileExists is a helper to check if a file exists
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
