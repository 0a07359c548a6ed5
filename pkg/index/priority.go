package index

import (
	"strings"

	"github.com/shotlink/shotlink/pkg/errors"
)

// Priority is an ordered extension preference list. Position is rank:
// the earlier an extension appears, the better it ranks. Lookups are
// case-insensitive and ignore leading dots, so "nef", "NEF" and ".nef"
// all mean the same thing.
type Priority struct {
	ranks   map[string]int
	ordered []string
}

// DefaultPriority is the built-in extension preference, best first.
var DefaultPriority = []string{"NEF", "TIF", "TIFF", "JPG", "JPEG"}

// NewPriority builds a Priority from the given extension list.
// Entries are normalized to upper-case without a leading dot. When an
// extension appears more than once, its first (best) position wins.
// An empty list is rejected.
func NewPriority(extensions []string) (Priority, error) {
	ranks := make(map[string]int, len(extensions))
	ordered := make([]string, 0, len(extensions))

	for _, ext := range extensions {
		normalized := NormalizeExt(ext)
		if normalized == "" {
			continue
		}
		if _, seen := ranks[normalized]; seen {
			continue
		}
		ranks[normalized] = len(ordered)
		ordered = append(ordered, normalized)
	}

	if len(ordered) == 0 {
		return Priority{}, errors.New(errors.ErrInvalidInput, "priority list must contain at least one extension")
	}

	return Priority{ranks: ranks, ordered: ordered}, nil
}

// MustPriority is NewPriority for lists known to be valid, such as the
// built-in default. It panics on an invalid list.
func MustPriority(extensions []string) Priority {
	p, err := NewPriority(extensions)
	if err != nil {
		panic(err)
	}
	return p
}

// Rank returns the rank of the given extension and whether the
// extension is ranked at all. Lower is better.
func (p Priority) Rank(ext string) (int, bool) {
	rank, ok := p.ranks[NormalizeExt(ext)]
	return rank, ok
}

// Extensions returns the normalized extension list, best first.
func (p Priority) Extensions() []string {
	out := make([]string, len(p.ordered))
	copy(out, p.ordered)
	return out
}

// Len returns the number of ranked extensions.
func (p Priority) Len() int {
	return len(p.ordered)
}

// String renders the list as a comma-separated string, best first.
func (p Priority) String() string {
	return strings.Join(p.ordered, ",")
}

// NormalizeExt canonicalizes an extension for comparison: leading dot
// stripped, upper-cased. "jpg", "JPG" and ".jpg" all yield "JPG".
func NormalizeExt(ext string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
