// Package sync replaces matched files in a shortcut folder with
// platform-native shortcuts to their best-ranked originals.
//
// A run walks the target tree once. For every file whose base name is
// in the candidate index, it removes the same-base files sitting
// directly in the target root and creates one shortcut per replacement
// file there. Mutations are immediate and never rolled back; a failed
// entry is recorded and the run moves on to the next base name.
package sync

import (
	stderrors "errors"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/filesystem"
	"github.com/shotlink/shotlink/pkg/index"
	"github.com/shotlink/shotlink/pkg/logging"
	"github.com/shotlink/shotlink/pkg/paths"
	"github.com/shotlink/shotlink/pkg/scanner"
	"github.com/shotlink/shotlink/pkg/shortcut"
	"github.com/shotlink/shotlink/pkg/sidecar"
	"github.com/shotlink/shotlink/pkg/types"
)

// DefaultReserved lists the metadata file names a sync never touches.
var DefaultReserved = []string{".DS_Store", "Thumbs.db", "desktop.ini"}

// Options configures a Syncer.
type Options struct {
	// FS is the filesystem to operate on. Defaults to the real one.
	FS types.FS

	// Creator makes the platform-native shortcuts. Required.
	Creator shortcut.Creator

	// Sidecar decides which originals drag a sidecar file along.
	Sidecar sidecar.Rule

	// Reserved are file names skipped entirely. Defaults to
	// DefaultReserved when nil.
	Reserved []string

	// DryRun reports what would happen without mutating anything.
	DryRun bool

	// Logger defaults to the package logger.
	Logger zerolog.Logger
}

// Syncer performs synchronization runs.
type Syncer struct {
	fs       types.FS
	creator  shortcut.Creator
	sidecar  sidecar.Rule
	reserved map[string]bool
	dryRun   bool
	logger   zerolog.Logger
}

// New creates a Syncer from the given options.
func New(opts Options) *Syncer {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("sync")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	reserved := opts.Reserved
	if reserved == nil {
		reserved = DefaultReserved
	}
	reservedSet := make(map[string]bool, len(reserved)+1)
	for _, name := range reserved {
		reservedSet[name] = true
	}
	// The folder override file is always reserved. A run must never
	// delete the configuration that shaped it.
	reservedSet[paths.FolderConfigFile] = true

	return &Syncer{
		fs:       fs,
		creator:  opts.Creator,
		sidecar:  opts.Sidecar,
		reserved: reservedSet,
		dryRun:   opts.DryRun,
		logger:   logger,
	}
}

// Run synchronizes the target root against the candidate index.
//
// The returned error covers setup failures only (unreadable target
// root). Per-entry failures are collected on the entries and joined
// into Result.Err; the run always continues to the next base name.
func (s *Syncer) Run(targetRoot string, idx index.Index) (*Result, error) {
	done := logging.LogOperationStart(s.logger, "sync")
	defer done()

	files, err := scanner.Scan(s.fs, targetRoot, true)
	if err != nil {
		return nil, err
	}

	result := &Result{
		TargetRoot: targetRoot,
		DryRun:     s.dryRun,
		Scanned:    len(files),
	}

	// Each base name is processed at most once per run, so shortcuts
	// created below are never treated as deletion candidates by a
	// later match of the same base.
	handled := make(map[string]bool)

	for _, file := range files {
		name := filepath.Base(file)
		if s.reserved[name] {
			s.logger.Trace().Str("file", file).Msg("Skipping reserved name")
			continue
		}

		base, _ := index.SplitBase(name)
		if base == "" || handled[base] {
			continue
		}

		cand, ok := idx[base]
		if !ok {
			s.logger.Trace().Str("file", file).Msg("No candidate, leaving untouched")
			continue
		}
		handled[base] = true

		entry := s.processEntry(targetRoot, file, base, cand)
		result.Entries = append(result.Entries, entry)
	}

	var errs []error
	for i := range result.Entries {
		if result.Entries[i].Err != nil {
			errs = append(errs, result.Entries[i].Err)
		}
	}
	result.Err = stderrors.Join(errs...)

	s.logger.Info().
		Str("targetRoot", targetRoot).
		Bool("dryRun", s.dryRun).
		Int("scanned", result.Scanned).
		Int("matched", result.MatchedCount()).
		Int("created", result.CreatedCount()).
		Int("deleted", result.DeletedCount()).
		Int("failed", result.FailedCount()).
		Msg("Sync run finished")

	return result, nil
}

// processEntry replaces one matched base name: resolve the replacement
// set, clear same-base files from the target root, then create the
// shortcuts. A deletion failure stops the entry before any shortcut is
// created, so a leftover file can never collide with a new shortcut.
func (s *Syncer) processEntry(targetRoot, matched, base string, cand index.Candidate) Entry {
	entry := Entry{
		Base:         base,
		Matched:      matched,
		Replacements: s.sidecar.Resolve(s.fs, cand),
	}

	logger := s.logger.With().Str("base", base).Logger()
	logger.Debug().
		Str("matched", matched).
		Strs("replacements", entry.Replacements).
		Msg("Replacing with shortcuts")

	if err := s.deleteSameBase(targetRoot, base, &entry); err != nil {
		entry.Err = err
		return entry
	}

	var errs []error
	for _, replacement := range entry.Replacements {
		shortcutPath := filepath.Join(targetRoot, filepath.Base(replacement)) + s.creator.Suffix()

		if s.dryRun {
			entry.Created = append(entry.Created, shortcutPath)
			continue
		}

		if err := s.creator.Create(replacement, shortcutPath); err != nil {
			logger.Error().Err(err).Str("shortcut", shortcutPath).Msg("Shortcut creation failed")
			errs = append(errs, err)
			continue
		}
		entry.Created = append(entry.Created, shortcutPath)
	}
	entry.Err = stderrors.Join(errs...)

	return entry
}

// deleteSameBase removes the files directly inside the target root
// whose base name matches, skipping reserved names. The root is
// re-listed per entry so earlier mutations of this run are seen.
func (s *Syncer) deleteSameBase(targetRoot, base string, entry *Entry) error {
	rootFiles, err := scanner.Scan(s.fs, targetRoot, false)
	if err != nil {
		return err
	}

	for _, file := range rootFiles {
		name := filepath.Base(file)
		if s.reserved[name] {
			continue
		}
		fileBase, _ := index.SplitBase(name)
		if fileBase != base {
			continue
		}

		if s.dryRun {
			entry.Deleted = append(entry.Deleted, file)
			continue
		}

		if err := s.fs.Remove(file); err != nil {
			return errors.Wrapf(err, errors.ErrFileDelete, "failed to delete %s", file)
		}
		entry.Deleted = append(entry.Deleted, file)
	}

	return nil
}
