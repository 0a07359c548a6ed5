package testutil

import (
	"github.com/shotlink/shotlink/pkg/shortcut"
	"github.com/shotlink/shotlink/pkg/types"
)

var (
	_ shortcut.Runner  = (*RecordingRunner)(nil)
	_ shortcut.Creator = (*RecordingCreator)(nil)
)

// RunnerCall records one invocation of a RecordingRunner.
type RunnerCall struct {
	Name string
	Args []string
}

// RecordingRunner is a shortcut.Runner that records every call and
// returns scripted output. Setting Err makes every call fail.
type RecordingRunner struct {
	Calls  []RunnerCall
	Output []byte
	Err    error
}

func (r *RecordingRunner) Run(name string, args ...string) ([]byte, error) {
	r.Calls = append(r.Calls, RunnerCall{Name: name, Args: args})
	if r.Err != nil {
		return r.Output, r.Err
	}
	return r.Output, nil
}

// CreatedShortcut records one successful RecordingCreator.Create call.
type CreatedShortcut struct {
	Source   string
	Shortcut string
}

// RecordingCreator is a shortcut.Creator for tests. It records
// creations, optionally fails for chosen sources, and when FS is set
// it writes a placeholder file at the shortcut path so later scans of
// the target see the shortcut as a real file.
type RecordingCreator struct {
	FS        types.FS
	KindName  string
	SuffixStr string
	FailOn    map[string]error

	Created []CreatedShortcut
}

func (c *RecordingCreator) Create(sourcePath, shortcutPath string) error {
	if err := c.FailOn[sourcePath]; err != nil {
		return err
	}

	c.Created = append(c.Created, CreatedShortcut{Source: sourcePath, Shortcut: shortcutPath})
	if c.FS != nil {
		if err := c.FS.WriteFile(shortcutPath, []byte("shortcut"), 0644); err != nil {
			return err
		}
	}
	return nil
}

func (c *RecordingCreator) Kind() string {
	if c.KindName == "" {
		return "recording"
	}
	return c.KindName
}

func (c *RecordingCreator) Suffix() string {
	return c.SuffixStr
}
