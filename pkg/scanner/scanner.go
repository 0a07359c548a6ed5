// Package scanner lists the files under a directory tree.
// It is the only place that walks the filesystem; both the indexer and
// the synchronizer consume its output, so the ordering guarantee lives
// here: entries are visited depth-first in lexical order, which makes
// every run deterministic regardless of the backing filesystem.
package scanner

import (
	"path/filepath"
	"sort"

	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/logging"
	"github.com/shotlink/shotlink/pkg/types"
)

var log = logging.GetLogger("scanner")

// Scan returns the files under root. With recursive set, the whole tree
// is walked; otherwise only the root's immediate files are returned.
// Directories themselves are never part of the result. Symlinked
// directories are not followed.
func Scan(fsys types.FS, root string, recursive bool) ([]string, error) {
	if root == "" {
		return nil, errors.New(errors.ErrInvalidInput, "scan root cannot be empty")
	}

	info, err := fsys.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", root)
	}

	var files []string
	if err := walk(fsys, root, recursive, &files); err != nil {
		return nil, err
	}

	log.Debug().
		Str("root", root).
		Bool("recursive", recursive).
		Int("files", len(files)).
		Msg("Scan complete")

	return files, nil
}

func walk(fsys types.FS, dir string, recursive bool, files *[]string) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read directory %s", dir)
	}

	// ReadDir implementations usually sort already; sorting here keeps
	// the ordering guarantee independent of the FS implementation.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if recursive {
				if err := walk(fsys, path, recursive, files); err != nil {
					return err
				}
			}
			continue
		}
		*files = append(*files, path)
	}

	return nil
}
