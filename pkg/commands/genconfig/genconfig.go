// Package genconfig implements the gen-config command.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/shotlink/shotlink/pkg/config"
	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/logging"
	"github.com/shotlink/shotlink/pkg/paths"
)

// GenConfigOptions holds options for the gen-config command.
type GenConfigOptions struct {
	// Write writes the generated config to the user config path
	// instead of just returning it for display.
	Write bool
}

// GenConfigResult reports the generated content and whether a file was
// written.
type GenConfigResult struct {
	ConfigContent string
	FilePath      string
	Written       bool
}

// GenConfig outputs or writes the default configuration with every
// value commented out.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	p, err := paths.New()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to initialize paths")
	}

	result := &GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
		FilePath:      p.ConfigFilePath(),
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	dir := filepath.Dir(result.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "failed to create directory %s", dir)
	}

	// Never clobber an existing config.
	if _, err := os.Stat(result.FilePath); err == nil {
		logger.Warn().Str("path", result.FilePath).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := os.WriteFile(result.FilePath, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "failed to write config to %s", result.FilePath)
	}

	logger.Info().Str("path", result.FilePath).Msg("Written config file")
	result.Written = true
	return result, nil
}
