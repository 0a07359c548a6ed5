// Package paths provides centralized path handling for shotlink.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/shotlink/shotlink/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for shotlink
	EnvConfigDir = "SHOTLINK_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for shotlink
	EnvStateDir = "SHOTLINK_STATE_DIR"

	// EnvCacheDir overrides the XDG cache directory for shotlink
	EnvCacheDir = "SHOTLINK_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for shotlink-specific files
	AppDirName = "shotlink"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// FolderConfigFile is the name of the per-folder configuration file
	FolderConfigFile = ".shotlink.toml"

	// LogFileName is the name of the log file
	LogFileName = "shotlink.log"
)

// Paths provides centralized path management for shotlink
type Paths interface {
	ConfigDir() string
	CacheDir() string
	StateDir() string
	ConfigFilePath() string
	FolderConfigPath(dir string) string
	LogFilePath() string
	NormalizePath(path string) (string, error)
}

// paths provides centralized path management for shotlink
type paths struct {
	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgCache is the XDG cache directory
	xdgCache string

	// xdgState is the XDG state directory
	xdgState string
}

// New creates a new Paths instance. XDG directories are resolved once,
// respecting the SHOTLINK_* environment overrides.
func New() (Paths, error) {
	p := &paths{}
	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	// Config directory
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// Cache directory
	if cacheDir := os.Getenv(EnvCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, AppDirName)
	}

	// State directory - XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		p.xdgState = filepath.Join(stateHome, AppDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", AppDirName)
	}
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ConfigDir returns the XDG config directory for shotlink
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// CacheDir returns the XDG cache directory for shotlink
func (p *paths) CacheDir() string {
	return p.xdgCache
}

// StateDir returns the XDG state directory for shotlink
func (p *paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the path to the user configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// FolderConfigPath returns the path to the per-folder configuration
// file inside the given directory
func (p *paths) FolderConfigPath(dir string) string {
	return filepath.Join(dir, FolderConfigFile)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NormalizePath expands ~ and resolves the path to an absolute form.
// It is used on user-supplied folder arguments before any filesystem
// work happens, so the rest of the code only ever sees absolute paths.
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	expanded := expandHome(path)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}

	return filepath.Clean(abs), nil
}
