// Package sidecar implements the sidecar companion rule: originals of
// certain types (NEF by default) carry an adjacent metadata file
// (<base>.xmp) that travels with them whenever they are selected.
package sidecar

import (
	"path/filepath"
	"strings"

	"github.com/shotlink/shotlink/pkg/index"
	"github.com/shotlink/shotlink/pkg/types"
)

// Rule decides which originals get a sidecar and how the sidecar file
// is named. The zero value is a disabled rule.
type Rule struct {
	ext     string
	sources map[string]bool
}

// NewRule builds a sidecar rule. extension is the sidecar's file
// extension ("XMP"); sources lists the original extensions whose
// selection pulls the sidecar along ("NEF"). Both are matched
// case-insensitively. An empty extension or source list disables the
// rule.
func NewRule(extension string, sources []string) Rule {
	r := Rule{
		ext:     index.NormalizeExt(extension),
		sources: make(map[string]bool, len(sources)),
	}
	for _, src := range sources {
		if normalized := index.NormalizeExt(src); normalized != "" {
			r.sources[normalized] = true
		}
	}
	return r
}

// Enabled reports whether the rule can ever produce a sidecar.
func (r Rule) Enabled() bool {
	return r.ext != "" && len(r.sources) > 0
}

// AppliesTo reports whether originals with the given extension carry
// a sidecar.
func (r Rule) AppliesTo(ext string) bool {
	return r.Enabled() && r.sources[index.NormalizeExt(ext)]
}

// PathFor returns the sidecar path adjacent to the given original:
// same directory, same base name, sidecar extension. The extension is
// lower-cased, matching how editing tools write these files.
func (r Rule) PathFor(originalPath string) string {
	trimmed := strings.TrimSuffix(originalPath, filepath.Ext(originalPath))
	return trimmed + "." + strings.ToLower(r.ext)
}

// Resolve expands a selected candidate into its replacement set: the
// candidate itself, plus the sidecar when the rule applies and the
// sidecar file actually exists.
func (r Rule) Resolve(fsys types.FS, cand index.Candidate) []string {
	files := []string{cand.Path}

	if !r.AppliesTo(cand.Ext) {
		return files
	}

	sidecarPath := r.PathFor(cand.Path)
	if info, err := fsys.Stat(sidecarPath); err == nil && !info.IsDir() {
		files = append(files, sidecarPath)
	}

	return files
}
