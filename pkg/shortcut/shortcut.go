// Package shortcut creates platform-native file shortcuts: Finder
// aliases on macOS through osascript, and .lnk shell links on Windows
// through PowerShell. Both go through the scripting bridge of the host
// OS rather than writing shortcut bytes directly, which keeps the
// produced shortcuts indistinguishable from manually created ones.
//
// There is deliberately no fallback for other platforms. A symlink is
// not an alias; pretending otherwise would silently change what the
// tool produces, so anything but darwin or windows is an error.
package shortcut

import (
	"os/exec"
	"runtime"

	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/logging"
	"github.com/shotlink/shotlink/pkg/types"
)

var log = logging.GetLogger("shortcut")

// Creator makes a platform-native shortcut to a file.
type Creator interface {
	// Create makes a shortcut at shortcutPath pointing at sourcePath.
	// The source must exist; the shortcut's parent directory too.
	Create(sourcePath, shortcutPath string) error

	// Kind names the shortcut flavor, e.g. "finder-alias".
	Kind() string

	// Suffix is what the platform appends to shortcut file names
	// (".lnk" on Windows, nothing on macOS).
	Suffix() string
}

// Runner executes an external command and returns its combined output.
// It exists so tests can intercept the osascript/powershell calls.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return &execRunner{}
}

type execRunner struct{}

func (r *execRunner) Run(name string, args ...string) ([]byte, error) {
	logging.LogCommand(name, args)
	return exec.Command(name, args...).CombinedOutput()
}

// New returns the Creator for the given GOOS. Anything but darwin or
// windows is rejected up front so a run fails before touching files.
func New(goos string, fsys types.FS, runner Runner) (Creator, error) {
	switch goos {
	case "darwin":
		return &finderAliasCreator{fs: fsys, runner: runner}, nil
	case "windows":
		return &shellLinkCreator{fs: fsys, runner: runner}, nil
	default:
		return nil, errors.Newf(errors.ErrUnsupportedPlatform, "unsupported operating system: %s", goos)
	}
}

// NewForHost returns the Creator for the platform the program is
// running on.
func NewForHost(fsys types.FS) (Creator, error) {
	return New(runtime.GOOS, fsys, NewRunner())
}

// checkSource verifies the shortcut source still exists. The index is
// built at the start of a run, so a source can vanish before its
// shortcut gets created.
func checkSource(fsys types.FS, sourcePath string) error {
	if _, err := fsys.Stat(sourcePath); err != nil {
		return errors.Wrapf(err, errors.ErrSourceNotFound, "source file %s does not exist", sourcePath)
	}
	return nil
}
