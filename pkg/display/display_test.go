// TEST TYPE: Unit Test
package display_test

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/shotlink/shotlink/pkg/display"
	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/sync"
	"github.com/shotlink/shotlink/pkg/ui"
)

func TestRenderMatch(t *testing.T) {
	tests := []struct {
		name     string
		entry    sync.Entry
		expected string
	}{
		{
			name: "single replacement",
			entry: sync.Entry{
				Base:         "a",
				Replacements: []string{"/ref/a.NEF"},
			},
			expected: "a -> /ref/a.NEF",
		},
		{
			name: "replacement with sidecar",
			entry: sync.Entry{
				Base:         "a",
				Replacements: []string{"/ref/a.NEF", "/ref/a.xmp"},
			},
			expected: "a -> /ref/a.NEF, /ref/a.xmp",
		},
		{
			name: "failed entry is marked",
			entry: sync.Entry{
				Base:         "a",
				Replacements: []string{"/ref/a.NEF"},
				Err:          errors.New(errors.ErrShortcutTool, "osascript failed"),
			},
			expected: "a -> /ref/a.NEF (failed)",
		},
	}

	r := display.NewRenderer(ui.FormatText)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.RenderMatch(tt.entry))
		})
	}
}

func TestRenderSummary(t *testing.T) {
	r := display.NewRenderer(ui.FormatText)

	result := &sync.Result{
		TargetRoot: "/target",
		Scanned:    5,
		Entries: []sync.Entry{
			{
				Base:         "a",
				Matched:      "/ref/a.NEF",
				Replacements: []string{"/ref/a.NEF", "/ref/a.xmp"},
				Deleted:      []string{"/target/a.JPG"},
				Created:      []string{"/target/a.NEF"},
			},
			{
				Base:         "b",
				Matched:      "/ref/b.NEF",
				Replacements: []string{"/ref/b.NEF"},
				Deleted:      []string{"/target/b.JPG"},
			},
		},
	}

	out := r.RenderSummary(result)
	assert.Equal(t, "Sync of /target: 2 matched, 1 created, 2 deleted, 0 failed", out)
}

func TestRenderSummaryDryRun(t *testing.T) {
	r := display.NewRenderer(ui.FormatText)

	result := &sync.Result{
		TargetRoot: "/target",
		DryRun:     true,
	}

	out := r.RenderSummary(result)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Dry run, nothing was changed", lines[0])
	assert.Equal(t, "Sync of /target: 0 matched, 0 created, 0 deleted, 0 failed", lines[1])
}

func TestRenderSummaryListsFailures(t *testing.T) {
	r := display.NewRenderer(ui.FormatText)

	result := &sync.Result{
		TargetRoot: "/target",
		Entries: []sync.Entry{
			{Base: "a", Matched: "/ref/a.NEF", Created: []string{"/target/a.NEF"}},
			{
				Base:    "b",
				Matched: "/ref/b.NEF",
				Err:     errors.New(errors.ErrShortcutTool, "osascript failed"),
			},
		},
	}

	out := r.RenderSummary(result)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Sync of /target: 2 matched, 1 created, 0 deleted, 1 failed", lines[0])
	assert.Contains(t, lines[1], "b: ")
	assert.Contains(t, lines[1], "osascript failed")
}

func TestRenderSummaryTerminalUsesPrefix(t *testing.T) {
	r := display.NewRenderer(ui.FormatTerminal)

	ok := &sync.Result{TargetRoot: "/target"}
	out := r.RenderSummary(ok)
	assert.Contains(t, out, pterm.Info.Prefix.Text)

	failed := &sync.Result{
		TargetRoot: "/target",
		Entries: []sync.Entry{
			{Base: "a", Err: errors.New(errors.ErrShortcutTool, "boom")},
		},
	}
	out = r.RenderSummary(failed)
	assert.Contains(t, out, pterm.Error.Prefix.Text)
}

func TestRenderError(t *testing.T) {
	plain := display.NewRenderer(ui.FormatText)
	err := errors.New(errors.ErrSourceNotFound, "original vanished")
	assert.Equal(t, err.Error(), plain.RenderError(err))

	terminal := display.NewRenderer(ui.FormatTerminal)
	out := terminal.RenderError(err)
	assert.Contains(t, out, pterm.Error.Prefix.Text)
	assert.Contains(t, out, "original vanished")
}

func TestRenderList(t *testing.T) {
	r := display.NewRenderer(ui.FormatText)

	rows := []display.ListRow{
		{Base: "a", Path: "/ref/a.NEF", Ext: "NEF", Rank: 0, Sidecar: "/ref/a.xmp"},
		{Base: "b", Path: "/ref/b.JPG", Ext: "JPG", Rank: 3},
		{Base: "c", Path: "/ref/c.NEF", Ext: "NEF", Rank: 0, Rating: "4", Label: "Blue"},
	}

	out := r.RenderList("/ref", rows)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "3 originals in /ref", lines[0])
	assert.Equal(t, "  a -> /ref/a.NEF [NEF #0] +sidecar", lines[1])
	assert.Equal(t, "  b -> /ref/b.JPG [JPG #3]", lines[2])
	assert.Equal(t, "  c -> /ref/c.NEF [NEF #0] rating=4 label=Blue", lines[3])
}

func TestRenderListEmpty(t *testing.T) {
	r := display.NewRenderer(ui.FormatText)
	out := r.RenderList("/ref", nil)
	assert.Equal(t, "0 originals in /ref", out)
}
