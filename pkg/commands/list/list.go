// Package list implements the list command: it shows which original
// each base name in a reference tree resolves to, and optionally the
// rating and label recorded in its sidecar file.
package list

import (
	"github.com/rs/zerolog"

	"github.com/shotlink/shotlink/pkg/commands/internal"
	"github.com/shotlink/shotlink/pkg/filesystem"
	"github.com/shotlink/shotlink/pkg/index"
	"github.com/shotlink/shotlink/pkg/logging"
	"github.com/shotlink/shotlink/pkg/sidecar"
	"github.com/shotlink/shotlink/pkg/types"
)

// ListOptions contains options for the list command.
type ListOptions struct {
	// ReferenceRoot is the tree searched for original files.
	ReferenceRoot string

	// Priority overrides the configured extension priority when
	// non-empty.
	Priority []string

	// ConfigFile overrides the default user config location.
	ConfigFile string

	// Sidecars reads rating and label metadata out of sidecar files.
	Sidecars bool

	// FileSystem to use (defaults to the OS filesystem).
	FileSystem types.FS
}

// Item is one resolved base name.
type Item struct {
	Base    string
	Path    string
	Ext     string
	Rank    int
	Sidecar string
	Rating  string
	Label   string
}

// ListResult holds the resolved originals, sorted by base name.
type ListResult struct {
	ReferenceRoot string
	Items         []Item
}

// List builds the candidate index for a reference tree and reports the
// winning original per base name.
func List(opts ListOptions) (*ListResult, error) {
	logger := logging.GetLogger("commands.list")
	logger.Debug().
		Str("referenceRoot", opts.ReferenceRoot).
		Bool("sidecars", opts.Sidecars).
		Msg("Starting list command")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	env, err := internal.Prepare(internal.PrepareOptions{
		ConfigFile: opts.ConfigFile,
		Priority:   opts.Priority,
	})
	if err != nil {
		return nil, err
	}

	referenceRoot, err := env.Paths.NormalizePath(opts.ReferenceRoot)
	if err != nil {
		return nil, err
	}

	idx, err := index.Build(fs, referenceRoot, env.Priority)
	if err != nil {
		return nil, err
	}

	result := &ListResult{ReferenceRoot: referenceRoot}
	for _, base := range idx.BaseNames() {
		cand := idx[base]
		item := Item{
			Base: base,
			Path: cand.Path,
			Ext:  cand.Ext,
			Rank: cand.Rank,
		}

		if env.Sidecar.AppliesTo(cand.Ext) {
			sidecarPath := env.Sidecar.PathFor(cand.Path)
			if info, err := fs.Stat(sidecarPath); err == nil && !info.IsDir() {
				item.Sidecar = sidecarPath
				if opts.Sidecars {
					readMeta(fs, &item, logger)
				}
			}
		}

		result.Items = append(result.Items, item)
	}

	logger.Info().Int("itemCount", len(result.Items)).Msg("List command finished")
	return result, nil
}

// readMeta fills in rating and label from the item's sidecar file. A
// broken sidecar is reported but never fails the listing.
func readMeta(fs types.FS, item *Item, logger zerolog.Logger) {
	meta, err := sidecar.ReadMeta(fs, item.Sidecar)
	if err != nil {
		logger.Warn().Err(err).Str("path", item.Sidecar).Msg("Failed to read sidecar metadata")
		return
	}
	item.Rating = meta.Rating
	item.Label = meta.Label
}
