// TEST TYPE: Unit Test

package shortcut_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/shortcut"
	"github.com/shotlink/shotlink/pkg/testutil"
)

func TestNew(t *testing.T) {
	tests := []struct {
		goos       string
		wantKind   string
		wantSuffix string
		wantErr    bool
	}{
		{goos: "darwin", wantKind: "finder-alias", wantSuffix: ""},
		{goos: "windows", wantKind: "shell-link", wantSuffix: ".lnk"},
		{goos: "linux", wantErr: true},
		{goos: "freebsd", wantErr: true},
		{goos: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("goos=%s", tt.goos), func(t *testing.T) {
			fsys := testutil.MemFS(t)
			creator, err := shortcut.New(tt.goos, fsys, &testutil.RecordingRunner{})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedPlatform))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, creator.Kind())
			assert.Equal(t, tt.wantSuffix, creator.Suffix())
		})
	}
}

func TestFinderAliasCreate(t *testing.T) {
	fsys := testutil.MemFS(t, "/ref/a.NEF")
	runner := &testutil.RecordingRunner{}

	creator, err := shortcut.New("darwin", fsys, runner)
	require.NoError(t, err)

	require.NoError(t, creator.Create("/ref/a.NEF", "/target/a.NEF"))

	require.Len(t, runner.Calls, 1)
	call := runner.Calls[0]
	assert.Equal(t, "osascript", call.Name)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "-e", call.Args[0])

	script := call.Args[1]
	assert.Contains(t, script, `tell application "Finder"`)
	assert.Contains(t, script, `make alias file to POSIX file "/ref/a.NEF" at POSIX file "/target"`)
	assert.Contains(t, script, `set name of result to "a.NEF"`)
}

func TestFinderAliasSourceMissing(t *testing.T) {
	fsys := testutil.MemFS(t)
	runner := &testutil.RecordingRunner{}

	creator, err := shortcut.New("darwin", fsys, runner)
	require.NoError(t, err)

	err = creator.Create("/ref/gone.NEF", "/target/gone.NEF")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
	assert.Empty(t, runner.Calls, "osascript must not run for a missing source")
}

func TestFinderAliasToolFailure(t *testing.T) {
	fsys := testutil.MemFS(t, "/ref/a.NEF")
	runner := &testutil.RecordingRunner{
		Output: []byte("execution error: Finder got an error"),
		Err:    fmt.Errorf("exit status 1"),
	}

	creator, err := shortcut.New("darwin", fsys, runner)
	require.NoError(t, err)

	err = creator.Create("/ref/a.NEF", "/target/a.NEF")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrShortcutTool))

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Contains(t, details["script"], "make alias file")
	assert.Equal(t, "execution error: Finder got an error", details["output"])
}

func TestShellLinkCreate(t *testing.T) {
	fsys := testutil.MemFS(t, "/ref/a.NEF")
	runner := &testutil.RecordingRunner{}

	creator, err := shortcut.New("windows", fsys, runner)
	require.NoError(t, err)

	require.NoError(t, creator.Create("/ref/a.NEF", "/target/a.NEF.lnk"))

	require.Len(t, runner.Calls, 1)
	call := runner.Calls[0]
	assert.Equal(t, "powershell", call.Name)
	require.Len(t, call.Args, 4)
	assert.Equal(t, []string{"-NoProfile", "-NonInteractive", "-Command"}, call.Args[:3])

	script := call.Args[3]
	assert.Contains(t, script, "New-Object -ComObject WScript.Shell")
	assert.Contains(t, script, "CreateShortcut('/target/a.NEF.lnk')")
	assert.Contains(t, script, "TargetPath = '/ref/a.NEF'")
	assert.Contains(t, script, "WorkingDirectory = '/ref'")
	assert.Contains(t, script, "Save()")
}

func TestShellLinkToolFailure(t *testing.T) {
	fsys := testutil.MemFS(t, "/ref/a.NEF")
	runner := &testutil.RecordingRunner{Err: fmt.Errorf("exit status 1")}

	creator, err := shortcut.New("windows", fsys, runner)
	require.NoError(t, err)

	err = creator.Create("/ref/a.NEF", "/target/a.NEF.lnk")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrShortcutTool))

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Contains(t, details["script"], "CreateShortcut")
}

func TestShellLinkSourceMissing(t *testing.T) {
	fsys := testutil.MemFS(t)
	runner := &testutil.RecordingRunner{}

	creator, err := shortcut.New("windows", fsys, runner)
	require.NoError(t, err)

	err = creator.Create("/ref/gone.NEF", "/target/gone.NEF.lnk")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
	assert.Empty(t, runner.Calls)
}
