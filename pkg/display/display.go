// Package display renders shotlink's human-facing output: the per-match
// replacement lines, the candidate listing and the run summary. All
// renderers return strings; commands decide where they go.
package display

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/shotlink/shotlink/pkg/sync"
	"github.com/shotlink/shotlink/pkg/ui"
	"github.com/shotlink/shotlink/pkg/ui/styles"
)

// Renderer turns results into output lines, styled or plain depending
// on the format.
type Renderer struct {
	format ui.Format
}

// NewRenderer creates a renderer for the given output format.
// FormatAuto is treated as plain text; callers are expected to have
// resolved the format through ui.DetectFormat already.
func NewRenderer(format ui.Format) *Renderer {
	return &Renderer{format: format}
}

// styled renders s with the named style in terminal format, or returns
// it untouched in plain text format.
func (r *Renderer) styled(name, s string) string {
	if r.format != ui.FormatTerminal {
		return s
	}
	return styles.GetStyle(name).Render(s)
}

// RenderMatch renders the one-line report for a matched base name:
// the base and the replacement files its shortcuts will point at.
func (r *Renderer) RenderMatch(entry sync.Entry) string {
	var b strings.Builder

	b.WriteString(r.styled("Base", entry.Base))
	b.WriteString(" -> ")
	b.WriteString(r.styled("FilePath", strings.Join(entry.Replacements, ", ")))

	if entry.Failed() {
		b.WriteString(" ")
		b.WriteString(r.styled("Error", "(failed)"))
	}

	return b.String()
}

// RenderSummary renders the end-of-run counters plus one line per
// failed entry.
func (r *Renderer) RenderSummary(result *sync.Result) string {
	var b strings.Builder

	if result.DryRun {
		b.WriteString(r.styled("Warning", "Dry run, nothing was changed"))
		b.WriteString("\n")
	}

	prefix := pterm.Info.Prefix.Text
	if result.FailedCount() > 0 {
		prefix = pterm.Error.Prefix.Text
	}
	if r.format != ui.FormatTerminal {
		prefix = ""
	}

	counts := fmt.Sprintf("%d matched, %d created, %d deleted, %d failed",
		result.MatchedCount(),
		result.CreatedCount(),
		result.DeletedCount(),
		result.FailedCount())

	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString(" ")
	}
	b.WriteString("Sync of ")
	b.WriteString(r.styled("FilePath", result.TargetRoot))
	b.WriteString(": ")
	b.WriteString(r.styled("Count", counts))

	for i := range result.Entries {
		entry := &result.Entries[i]
		if !entry.Failed() {
			continue
		}
		b.WriteString("\n")
		b.WriteString("  ")
		b.WriteString(r.styled("Error", entry.Base))
		b.WriteString(": ")
		b.WriteString(entry.Err.Error())
	}

	return b.String()
}

// RenderError renders a fatal error line.
func (r *Renderer) RenderError(err error) string {
	prefix := ""
	if r.format == ui.FormatTerminal {
		prefix = pterm.Error.Prefix.Text + " "
	}
	return prefix + r.styled("Error", err.Error())
}
