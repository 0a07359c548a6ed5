// Package index builds the candidate index over a reference tree.
// For every base name found under the reference root it remembers the
// single file whose extension ranks best in the priority list. The
// index is rebuilt from scratch on every run; nothing is cached.
package index

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/shotlink/shotlink/pkg/logging"
	"github.com/shotlink/shotlink/pkg/scanner"
	"github.com/shotlink/shotlink/pkg/types"
)

var log = logging.GetLogger("index")

// Candidate is the selected original for one base name.
type Candidate struct {
	// Path is the absolute path of the selected file.
	Path string

	// Ext is the file's normalized extension, e.g. "NEF".
	Ext string

	// Rank is the extension's position in the priority list.
	Rank int
}

// Index maps a base name to its best-ranked candidate.
type Index map[string]Candidate

// Build walks the reference tree and selects, per base name, the file
// whose extension ranks earliest in the priority list. Files with
// unranked extensions are ignored. A lower rank always replaces a
// higher one; between equal ranks the lexically smaller path wins, so
// the result does not depend on traversal order.
func Build(fsys types.FS, referenceRoot string, pri Priority) (Index, error) {
	files, err := scanner.Scan(fsys, referenceRoot, true)
	if err != nil {
		return nil, err
	}

	idx := make(Index)
	for _, path := range files {
		base, ext := SplitBase(filepath.Base(path))
		if base == "" {
			continue
		}

		rank, ok := pri.Rank(ext)
		if !ok {
			continue
		}

		cand := Candidate{Path: path, Ext: NormalizeExt(ext), Rank: rank}
		existing, present := idx[base]
		if !present || better(cand, existing) {
			idx[base] = cand
		}
	}

	log.Debug().
		Str("referenceRoot", referenceRoot).
		Int("files", len(files)).
		Int("indexed", len(idx)).
		Msg("Candidate index built")

	return idx, nil
}

// better reports whether a should replace b in the index.
func better(a, b Candidate) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Path < b.Path
}

// BaseNames returns the indexed base names in sorted order.
func (idx Index) BaseNames() []string {
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SplitBase splits a file name into its base name and raw extension.
// The extension is everything from the final dot on, so "a.tar.gz"
// yields ("a.tar", ".gz"). Names whose only dot is the leading one,
// like ".DS_Store", have no usable base and yield ("", ".DS_Store").
func SplitBase(filename string) (base, ext string) {
	ext = filepath.Ext(filename)
	base = strings.TrimSuffix(filename, ext)
	return base, ext
}
