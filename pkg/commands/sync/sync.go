// Package sync implements the sync command: it replaces matched files
// under a target folder with platform-native shortcuts to the best
// originals found in a reference tree.
package sync

import (
	"github.com/shotlink/shotlink/pkg/commands/internal"
	"github.com/shotlink/shotlink/pkg/filesystem"
	"github.com/shotlink/shotlink/pkg/index"
	"github.com/shotlink/shotlink/pkg/logging"
	"github.com/shotlink/shotlink/pkg/shortcut"
	syncer "github.com/shotlink/shotlink/pkg/sync"
	"github.com/shotlink/shotlink/pkg/types"
)

// SyncOptions contains options for the sync command.
type SyncOptions struct {
	// TargetRoot is the folder whose files get replaced by shortcuts.
	TargetRoot string

	// ReferenceRoot is the tree searched for original files.
	ReferenceRoot string

	// Priority overrides the configured extension priority when
	// non-empty.
	Priority []string

	// ConfigFile overrides the default user config location.
	ConfigFile string

	// DryRun reports what would happen without changing anything.
	DryRun bool

	// FileSystem to use (defaults to the OS filesystem).
	FileSystem types.FS

	// Creator overrides the shortcut creator. Tests use this;
	// production resolves one from the running OS.
	Creator shortcut.Creator
}

// Sync runs a full synchronization pass and returns its result. The
// returned error covers setup failures only; per-file failures are
// collected on the result and joined into Result.Err.
func Sync(opts SyncOptions) (*syncer.Result, error) {
	logger := logging.GetLogger("commands.sync")
	logger.Debug().
		Str("targetRoot", opts.TargetRoot).
		Str("referenceRoot", opts.ReferenceRoot).
		Strs("priority", opts.Priority).
		Bool("dryRun", opts.DryRun).
		Msg("Starting sync command")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	// 1. Resolve configuration. The folder override is read from the
	// target root, where the files being replaced live.
	env, err := internal.Prepare(internal.PrepareOptions{
		ConfigFile: opts.ConfigFile,
		FolderDir:  opts.TargetRoot,
		Priority:   opts.Priority,
	})
	if err != nil {
		return nil, err
	}

	// 2. Normalize the roots. Relative and home-relative paths are
	// accepted on the command line.
	targetRoot, err := env.Paths.NormalizePath(opts.TargetRoot)
	if err != nil {
		return nil, err
	}
	referenceRoot, err := env.Paths.NormalizePath(opts.ReferenceRoot)
	if err != nil {
		return nil, err
	}

	// 3. Resolve the shortcut creator before touching any file, so an
	// unsupported platform never gets a partial run.
	creator := opts.Creator
	if creator == nil {
		creator, err = shortcut.NewForHost(fs)
		if err != nil {
			return nil, err
		}
	}

	// 4. Build the candidate index from the reference tree.
	idx, err := index.Build(fs, referenceRoot, env.Priority)
	if err != nil {
		return nil, err
	}

	// 5. Run the synchronization.
	s := syncer.New(syncer.Options{
		FS:       fs,
		Creator:  creator,
		Sidecar:  env.Sidecar,
		Reserved: env.Config.Sync.Reserved,
		DryRun:   opts.DryRun,
		Logger:   logging.GetLogger("sync"),
	})

	return s.Run(targetRoot, idx)
}
