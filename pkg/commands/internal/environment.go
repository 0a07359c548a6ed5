// Package internal holds the shared setup that every shotlink command
// runs through before doing its own work: path resolution and layered
// configuration.
package internal

import (
	"github.com/shotlink/shotlink/pkg/config"
	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/index"
	"github.com/shotlink/shotlink/pkg/logging"
	"github.com/shotlink/shotlink/pkg/paths"
	"github.com/shotlink/shotlink/pkg/sidecar"
)

// PrepareOptions selects the configuration sources for a command run.
type PrepareOptions struct {
	// ConfigFile overrides the default user config location. The file
	// must exist when set.
	ConfigFile string

	// FolderDir, when non-empty, is a directory checked for a
	// folder-level .shotlink.toml override.
	FolderDir string

	// Priority overrides the configured extension priority when
	// non-empty, typically from a command line flag.
	Priority []string
}

// Environment is the resolved configuration a command runs with.
type Environment struct {
	Paths    paths.Paths
	Config   *config.Config
	Priority index.Priority
	Sidecar  sidecar.Rule
}

// Prepare resolves paths and layered configuration into a ready
// Environment. Precedence, lowest to highest: embedded defaults, user
// config file, SHOTLINK_* environment variables, the folder override,
// explicit flags.
func Prepare(opts PrepareOptions) (*Environment, error) {
	logger := logging.GetLogger("commands.internal")

	// 1. Resolve application paths.
	p, err := paths.New()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to initialize paths")
	}

	// 2. Locate and load the user config. An explicitly requested file
	// must exist; the default location is optional.
	configFile := opts.ConfigFile
	if configFile != "" {
		if !config.FileExists(configFile) {
			return nil, errors.Newf(errors.ErrConfigLoad, "config file not found: %s", configFile)
		}
	} else {
		configFile = p.ConfigFilePath()
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	// 3. Apply the folder-level override when present.
	if opts.FolderDir != "" {
		folderDir, err := p.NormalizePath(opts.FolderDir)
		if err != nil {
			return nil, err
		}
		folderPath := p.FolderConfigPath(folderDir)
		if config.FileExists(folderPath) {
			folderCfg, err := config.LoadFolderConfig(folderPath)
			if err != nil {
				return nil, err
			}
			cfg = config.ApplyFolderConfig(cfg, folderCfg)
			logger.Debug().Str("path", folderPath).Msg("Applied folder config override")
		}
	}

	// 4. Explicit flags beat everything else.
	extensions := cfg.Sync.Priority
	if len(opts.Priority) > 0 {
		extensions = opts.Priority
	}

	pri, err := index.NewPriority(extensions)
	if err != nil {
		return nil, err
	}

	env := &Environment{
		Paths:    p,
		Config:   cfg,
		Priority: pri,
		Sidecar:  sidecar.NewRule(cfg.Sync.Sidecar.Extension, cfg.Sync.Sidecar.Sources),
	}

	logger.Debug().
		Str("priority", pri.String()).
		Bool("sidecar", env.Sidecar.Enabled()).
		Msg("Environment prepared")

	return env, nil
}
